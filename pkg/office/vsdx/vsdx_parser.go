package vsdx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"wordfreq/pkg/logger"
	"wordfreq/pkg/office/ooxml"
)

// OfficeVsdxParser 按页码顺序提取 visio/pages 下各页形状中的文本
type OfficeVsdxParser struct{}

var textSpec = ooxml.TextSpec{
	Text:  ooxml.Set("Text"),
	Break: ooxml.Set("Text", "pp"),
}

func (v *OfficeVsdxParser) Parse(filePath string) ([]byte, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open vsdx %s: %w", filePath, err)
	}
	defer r.Close()

	pages := ooxml.Numbered(r.File, "visio/pages", "page")
	if len(pages) == 0 {
		return nil, fmt.Errorf("vsdx %s: %w: visio/pages/page*.xml", filePath, ooxml.ErrMemberNotFound)
	}

	var buf bytes.Buffer
	for _, f := range pages {
		text, err := ooxml.CollectMember(f, textSpec)
		if err != nil {
			return nil, fmt.Errorf("vsdx %s: %w", filePath, err)
		}
		buf.Write(text)
		buf.WriteByte('\n')
	}
	logger.DebugLogger.Printf("vsdx %s: %d pages, %d media", filePath, len(pages), countMedia(r.File))
	return buf.Bytes(), nil
}

// countMedia 统计内嵌的媒体文件（图片等），仅用于日志
func countMedia(files []*zip.File) int {
	n := 0
	for _, f := range files {
		if strings.HasPrefix(f.Name, "visio/media/") {
			n++
		}
	}
	return n
}
