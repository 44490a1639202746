package internal

import (
	"errors"
	"fmt"
	"os"

	"wordfreq/pkg/logger"
)

// ErrNoParser 既没有对应类型的解析器，也没有兜底解析器
var ErrNoParser = errors.New("no parser registered for file type")

// FileParser 从文件中提取可供分词的文本
type FileParser interface {
	Parse(filePath string) ([]byte, error)
}

var parsers = make(map[int]FileParser)

// RawFileParser 兜底解析器，原样返回文件内容
type RawFileParser struct{}

func (p *RawFileParser) Parse(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	return data, nil
}

// RegisterParser 注册文件类型解析器，重复注册被忽略
func RegisterParser(fileType int, parser FileParser) {
	if _, exists := parsers[fileType]; exists {
		logger.Logger.Printf("file type %d already registered, ignoring %T", fileType, parser)
		return
	}
	parsers[fileType] = parser
}

// GetParser 获取指定文件类型的解析器，未注册时退回 FileTypeOther
func GetParser(fileType int) (FileParser, error) {
	if parser, ok := parsers[fileType]; ok {
		return parser, nil
	}
	if parser, ok := parsers[FileTypeOther]; ok {
		logger.DebugLogger.Printf("file type %d has no parser, using fallback", fileType)
		return parser, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrNoParser, fileType)
}

// ParserFor 按文件后缀选择解析器
func ParserFor(filePath string) (FileParser, error) {
	return GetParser(GetDynamicFileType(filePath))
}

func init() {
	RegisterParser(FileTypeOther, &RawFileParser{})
}
