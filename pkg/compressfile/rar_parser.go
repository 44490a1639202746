package compressfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nwaples/rardecode"

	"wordfreq/internal"
	"wordfreq/pkg/logger"
)

// RarFileParser 仅支持无密码的rar
type RarFileParser struct{}

func (p *RarFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filePath, err)
	}
	defer file.Close()

	reader, err := rardecode.NewReader(file, "")
	if err != nil {
		return nil, fmt.Errorf("rar %s: %w", filePath, err)
	}

	return extract("rar_extract_", func(dir string) error {
		for {
			hdr, err := reader.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("rar %s: %w", filePath, err)
			}
			if hdr.IsDir {
				continue
			}
			logger.DebugLogger.Printf("rar member: %s", hdr.Name)
			if err := writeMember(dir, hdr.Name, reader); err != nil {
				return err
			}
		}
	})
}

func init() {
	internal.RegisterParser(internal.FileTypeRAR, &RarFileParser{})
}
