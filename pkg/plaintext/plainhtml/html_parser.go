package plainhtml

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"wordfreq/pkg/logger"
)

// TextHTMLParser 提取HTML中的可见文本
type TextHTMLParser struct{}

// 不含可见文本的元素
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"head":     true,
	"noscript": true,
	"template": true,
}

// ParseHtml 解析HTML内容，文本片段之间以空格分隔
func (p *TextHTMLParser) ParseHtml(content []byte) ([]byte, error) {
	enc, name, _ := charset.DetermineEncoding(content, "text/html")
	logger.DebugLogger.Printf("html charset: %s", name)
	utf8Content, _, err := transform.Bytes(enc.NewDecoder(), content)
	if err != nil {
		return nil, fmt.Errorf("html decode %s: %w", name, err)
	}

	doc, err := html.Parse(bytes.NewReader(utf8Content))
	if err != nil {
		return nil, fmt.Errorf("html parse error: %w", err)
	}

	var segments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				segments = append(segments, s)
			}
			return
		case html.ElementNode:
			if skipElements[n.Data] {
				return
			}
			if n.Data == "img" {
				for _, a := range n.Attr {
					if a.Key == "alt" && a.Val != "" {
						segments = append(segments, a.Val)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return []byte(strings.Join(segments, " ")), nil
}

func (p *TextHTMLParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read html file %s: %w", filePath, err)
	}
	return p.ParseHtml(content)
}
