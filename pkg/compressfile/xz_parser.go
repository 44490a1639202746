package compressfile

import (
	"fmt"
	"os"

	"github.com/ulikunitz/xz"

	"wordfreq/internal"
)

type XzFileParser struct{}

func (p *XzFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filePath, err)
	}
	defer file.Close()

	r, err := xz.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("xz %s: %w", filePath, err)
	}
	return parseStream("xz_extract_", streamName(filePath, ".xz"), r)
}

func init() {
	internal.RegisterParser(internal.FileTypeXZ, &XzFileParser{})
}
