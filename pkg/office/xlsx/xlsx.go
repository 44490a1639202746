package xlsx

import (
	"archive/zip"
	"bytes"
	"fmt"

	"wordfreq/pkg/logger"
	"wordfreq/pkg/office/ooxml"
)

// OfficeXlsxParser 提取共享字符串表与内联字符串。
// 数值单元格不含单词，直接跳过。
type OfficeXlsxParser struct{}

var textSpec = ooxml.TextSpec{
	Text:  ooxml.Set("t"),
	Break: ooxml.Set("si", "is"),
}

func (p *OfficeXlsxParser) Parse(filePath string) ([]byte, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", filePath, err)
	}
	defer r.Close()

	var parts []*zip.File
	if f, err := ooxml.Find(r.File, "xl/sharedStrings.xml"); err == nil {
		parts = append(parts, f)
	}
	parts = append(parts, ooxml.Numbered(r.File, "xl/worksheets", "sheet")...)
	if len(parts) == 0 {
		return nil, fmt.Errorf("xlsx %s: %w: no sheets", filePath, ooxml.ErrMemberNotFound)
	}

	var buf bytes.Buffer
	for _, f := range parts {
		text, err := ooxml.CollectMember(f, textSpec)
		if err != nil {
			logger.Logger.Printf("xlsx %s: skip %v", filePath, err)
			continue
		}
		buf.Write(text)
	}
	return buf.Bytes(), nil
}
