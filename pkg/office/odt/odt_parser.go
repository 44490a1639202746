package odt

import (
	"archive/zip"
	"fmt"

	"wordfreq/pkg/office/ooxml"
)

// OfficeOdtParser 提取 content.xml 中段落与标题的文本
type OfficeOdtParser struct{}

var textSpec = ooxml.TextSpec{
	Text:  ooxml.Set("p", "h"),
	Break: ooxml.Set("p", "h", "tab", "line-break", "s"),
}

func (p *OfficeOdtParser) Parse(filePath string) ([]byte, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open odt %s: %w", filePath, err)
	}
	defer r.Close()

	content, err := ooxml.Find(r.File, "content.xml")
	if err != nil {
		return nil, fmt.Errorf("odt %s: %w", filePath, err)
	}
	text, err := ooxml.CollectMember(content, textSpec)
	if err != nil {
		return nil, fmt.Errorf("odt %s: %w", filePath, err)
	}
	return text, nil
}
