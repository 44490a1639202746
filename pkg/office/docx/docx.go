package docx

import (
	"archive/zip"
	"bytes"
	"fmt"

	"wordfreq/pkg/logger"
	"wordfreq/pkg/office/ooxml"
)

// OfficeDocxParser 提取正文、页眉页脚、脚注中的文本
type OfficeDocxParser struct{}

var textSpec = ooxml.TextSpec{
	Text:  ooxml.Set("t"),
	Break: ooxml.Set("p", "tab", "br"),
}

func (p *OfficeDocxParser) Parse(filePath string) ([]byte, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open docx %s: %w", filePath, err)
	}
	defer r.Close()

	doc, err := ooxml.Find(r.File, "word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("docx %s: %w", filePath, err)
	}
	parts := []*zip.File{doc}
	parts = append(parts, ooxml.Numbered(r.File, "word", "header")...)
	parts = append(parts, ooxml.Numbered(r.File, "word", "footer")...)
	if f, err := ooxml.Find(r.File, "word/footnotes.xml"); err == nil {
		parts = append(parts, f)
	}

	var buf bytes.Buffer
	for _, f := range parts {
		text, err := ooxml.CollectMember(f, textSpec)
		if err != nil {
			if f == doc {
				return nil, fmt.Errorf("docx %s: %w", filePath, err)
			}
			logger.Logger.Printf("docx %s: skip %v", filePath, err)
			continue
		}
		buf.Write(text)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
