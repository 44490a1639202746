package plaintxt

import (
	"fmt"
	"os"

	"wordfreq/pkg/plaintext/charset"
)

// TextPlainParser 纯文本，按探测到的编码转为 UTF-8
type TextPlainParser struct{}

func (p *TextPlainParser) Parse(filePath string) ([]byte, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	return charset.Decode(raw)
}
