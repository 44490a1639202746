package compressfile

import (
	"fmt"

	"github.com/gen2brain/go-unarr"

	"wordfreq/internal"
	"wordfreq/pkg/logger"
)

type SevenZFileParser struct{}

func (p *SevenZFileParser) Parse(filePath string) ([]byte, error) {
	archive, err := unarr.NewArchive(filePath)
	if err != nil {
		return nil, fmt.Errorf("open 7z %s: %w", filePath, err)
	}
	defer archive.Close()

	return extract("7z_extract_", func(dir string) error {
		files, err := archive.Extract(dir)
		if err != nil {
			return fmt.Errorf("extract 7z %s: %w", filePath, err)
		}
		logger.DebugLogger.Printf("7z members: %d", len(files))
		return nil
	})
}

func init() {
	internal.RegisterParser(internal.FileType7Z, &SevenZFileParser{})
}
