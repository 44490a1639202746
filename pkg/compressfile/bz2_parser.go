package compressfile

import (
	"compress/bzip2"
	"fmt"
	"os"

	"wordfreq/internal"
)

type Bz2FileParser struct{}

func (p *Bz2FileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filePath, err)
	}
	defer file.Close()

	return parseStream("bz2_extract_", streamName(filePath, ".bz2"), bzip2.NewReader(file))
}

func init() {
	internal.RegisterParser(internal.FileTypeBZ2, &Bz2FileParser{})
}
