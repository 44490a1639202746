package compressfile

import (
	"archive/zip"
	"fmt"

	"wordfreq/internal"
	"wordfreq/pkg/logger"
)

type ZipFileParser struct{}

func (p *ZipFileParser) Parse(filePath string) ([]byte, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", filePath, err)
	}
	defer r.Close()

	return extract("zip_extract_", func(dir string) error {
		for _, f := range r.File {
			if f.FileInfo().IsDir() {
				continue
			}
			logger.DebugLogger.Printf("zip member: %s", f.Name)
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("open zip member %s: %w", f.Name, err)
			}
			err = writeMember(dir, f.Name, rc)
			rc.Close()
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func init() {
	internal.RegisterParser(internal.FileTypeZIP, &ZipFileParser{})
	internal.RegisterParser(internal.FileTypeJAR, &ZipFileParser{})
	internal.RegisterParser(internal.FileTypeWAR, &ZipFileParser{})
}
