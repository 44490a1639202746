// Package charset converts extracted bytes of unknown encoding to UTF-8.
package charset

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"wordfreq/pkg/logger"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode 将 raw 转为 UTF-8。
// 带 BOM 的按 BOM 解码；合法 UTF-8 原样返回；其余由 chardet 探测编码，
// 探测失败或编码未知时按 Windows-1252 处理。
func Decode(raw []byte) ([]byte, error) {
	if hasBOM(raw) {
		return convert(unicode.BOMOverride(encoding.Nop.NewDecoder()), raw)
	}
	if utf8.Valid(raw) {
		return raw, nil
	}
	return convert(Detect(raw).NewDecoder(), raw)
}

// Detect 探测 raw 的编码
func Detect(raw []byte) encoding.Encoding {
	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		logger.Logger.Printf("charset detection failed: %v, assuming windows-1252", err)
		return charmap.Windows1252
	}
	enc, err := htmlindex.Get(result.Charset)
	if err != nil {
		logger.Logger.Printf("unsupported charset %s, assuming windows-1252", result.Charset)
		return charmap.Windows1252
	}
	logger.DebugLogger.Printf("detected charset %s (confidence %d)", result.Charset, result.Confidence)
	return enc
}

func hasBOM(raw []byte) bool {
	return bytes.HasPrefix(raw, bomUTF8) || bytes.HasPrefix(raw, bomUTF16LE) || bytes.HasPrefix(raw, bomUTF16BE)
}

func convert(t transform.Transformer, raw []byte) ([]byte, error) {
	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return nil, fmt.Errorf("decode text: %w", err)
	}
	return out, nil
}
