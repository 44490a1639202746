package compressfile

import (
	"compress/gzip"
	"fmt"
	"os"

	"wordfreq/internal"
)

type GzFileParser struct{}

func (p *GzFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filePath, err)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("gzip %s: %w", filePath, err)
	}
	defer gz.Close()

	name := streamName(filePath, ".gz")
	// tar.gz 的头部文件名通常为空，使用去掉后缀的外层文件名
	if gz.Header.Name != "" && internal.GetDynamicFileType(name) != internal.FileTypeTAR {
		name = gz.Header.Name
	}
	return parseStream("gz_extract_", name, gz)
}

func init() {
	internal.RegisterParser(internal.FileTypeGZ, &GzFileParser{})
	internal.RegisterParser(internal.FileTypeTARGZ, &GzFileParser{})
}
