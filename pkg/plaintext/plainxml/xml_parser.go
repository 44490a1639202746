package plainxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// TextXMLParser 提取XML中的字符数据，忽略注释和处理指令
type TextXMLParser struct{}

func (p *TextXMLParser) ParseXml(content []byte) ([]byte, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.CharsetReader = charset.NewReaderLabel

	var segments []string
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xml decode error: %w", err)
		}
		if data, ok := token.(xml.CharData); ok {
			if s := strings.TrimSpace(string(data)); s != "" {
				segments = append(segments, s)
			}
		}
	}
	return []byte(strings.Join(segments, " ")), nil
}

func (p *TextXMLParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read xml file: %w", err)
	}
	return p.ParseXml(content)
}
