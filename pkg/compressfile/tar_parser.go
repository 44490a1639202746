package compressfile

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"

	"wordfreq/internal"
	"wordfreq/pkg/logger"
)

type TarFileParser struct{}

func (p *TarFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filePath, err)
	}
	defer file.Close()

	return extract("tar_extract_", func(dir string) error {
		tr := tar.NewReader(file)
		for {
			header, err := tr.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("tar %s: %w", filePath, err)
			}
			// 只提取普通文件，目录在写文件时按需创建
			if header.Typeflag != tar.TypeReg {
				continue
			}
			logger.DebugLogger.Printf("tar member: %s", header.Name)
			if err := writeMember(dir, header.Name, tr); err != nil {
				return err
			}
		}
	})
}

func init() {
	internal.RegisterParser(internal.FileTypeTAR, &TarFileParser{})
}
