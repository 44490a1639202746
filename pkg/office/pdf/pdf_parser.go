package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"

	ledongthucpdf "github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
	rscpdf "github.com/rsc/pdf"

	"wordfreq/pkg/compressfile"
	"wordfreq/pkg/logger"
	"wordfreq/pkg/plaintext/charset"
)

// ErrNoText 所有提取方式都没有得到文本
var ErrNoText = errors.New("no text extracted from pdf")

// OfficePdfParser 依次尝试 ledongthuc/pdf、rsc/pdf、pdfcpu，最后退回直接扫描文本对象
type OfficePdfParser struct{}

type extractor struct {
	name string
	fn   func(filePath string) ([]byte, error)
}

func (p *OfficePdfParser) Parse(filePath string) ([]byte, error) {
	extractors := []extractor{
		{"ledongthuc/pdf", parseWithLedongthuc},
		{"rsc/pdf", parseWithRsc},
		{"pdfcpu", parseWithPdfcpu},
		{"raw", parseRaw},
	}
	var errs []error
	for _, e := range extractors {
		text, err := run(e.fn, filePath)
		if err == nil && len(bytes.TrimSpace(text)) > 0 {
			logger.Logger.Printf("pdf %s: extracted with %s", filePath, e.name)
			return text, nil
		}
		if err == nil {
			err = ErrNoText
		}
		logger.Logger.Printf("pdf %s: %s failed: %v", filePath, e.name, err)
		errs = append(errs, fmt.Errorf("%s: %w", e.name, err))
	}
	return nil, fmt.Errorf("pdf %s: %w", filePath, errors.Join(errs...))
}

// run 调用提取函数，第三方库遇到损坏文件时可能 panic
func run(fn func(string) ([]byte, error), filePath string) (text []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(filePath)
}

func parseWithLedongthuc(filePath string) ([]byte, error) {
	f, r, err := ledongthucpdf.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			logger.DebugLogger.Printf("page %d: %v", i, err)
			continue
		}
		buf.WriteString(content)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func parseWithRsc(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	r, err := rscpdf.NewReader(file, info.Size())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, t := range page.Content().Text {
			buf.WriteString(t.S)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func parseWithPdfcpu(filePath string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "pdf_extract_")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	if err := pdfcpu.ExtractContentFile(filePath, tmpDir, nil, nil); err != nil {
		return nil, err
	}
	content, _, err := compressfile.WalkDir(tmpDir)
	if err != nil {
		return nil, err
	}
	return literalStrings(content), nil
}

func parseRaw(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, errors.New("not a pdf file")
	}
	return charset.Decode(literalStrings(data))
}

var literalRegex = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)\s*Tj|\[((?:[^\]])*)\]\s*TJ`)
var innerRegex = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)`)

// literalStrings 从内容流中取出 Tj/TJ 操作的字面量字符串
func literalStrings(stream []byte) []byte {
	var buf bytes.Buffer
	for _, m := range literalRegex.FindAllSubmatch(stream, -1) {
		if m[1] != nil {
			buf.Write(unescape(m[1]))
		} else {
			for _, s := range innerRegex.FindAllSubmatch(m[2], -1) {
				buf.Write(unescape(s[1]))
			}
		}
		buf.WriteByte(' ')
	}
	return buf.Bytes()
}

func unescape(s []byte) []byte {
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			out = append(out, s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n', 'r', 't':
			out = append(out, ' ')
		default:
			out = append(out, s[i])
		}
	}
	return out
}
