package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"

	"wordfreq/pkg/logger"
	"wordfreq/pkg/office/ooxml"
)

// OfficePptxParser 按幻灯片顺序提取文本，包括备注页
type OfficePptxParser struct{}

var textSpec = ooxml.TextSpec{
	Text:  ooxml.Set("t"),
	Break: ooxml.Set("p"),
}

func (p *OfficePptxParser) Parse(filePath string) ([]byte, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open pptx %s: %w", filePath, err)
	}
	defer r.Close()

	slides := ooxml.Numbered(r.File, "ppt/slides", "slide")
	if len(slides) == 0 {
		return nil, fmt.Errorf("pptx %s: %w: ppt/slides/slide*.xml", filePath, ooxml.ErrMemberNotFound)
	}
	parts := append(slides, ooxml.Numbered(r.File, "ppt/notesSlides", "notesSlide")...)

	var buf bytes.Buffer
	for _, f := range parts {
		text, err := ooxml.CollectMember(f, textSpec)
		if err != nil {
			logger.Logger.Printf("pptx %s: skip %v", filePath, err)
			continue
		}
		buf.Write(text)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
