// Package rtf extracts the body text of RTF documents.
//
// Destination groups (font and color tables, stylesheets, pictures, document
// info and every \* group) are skipped. \'hh escapes and plain text are
// decoded with the code page named by \ansicpgN; \uN escapes are written as
// UTF-8 and the \ucN fallback characters after them are dropped.
package rtf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"wordfreq/pkg/logger"
)

// ErrNotRtf 文件不以 {\rtf 开头
var ErrNotRtf = errors.New("not an rtf document")

// OfficeRtfParser RTF文件解析器
type OfficeRtfParser struct{}

func (p *OfficeRtfParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open rtf %s: %w", filePath, err)
	}
	if !bytes.HasPrefix(bytes.TrimLeft(content, " \t\r\n"), []byte(`{\rtf`)) {
		return nil, fmt.Errorf("rtf %s: %w", filePath, ErrNotRtf)
	}
	return extractText(content), nil
}

// 这些控制字开启的组不含正文
var skipGroups = map[string]bool{
	"fonttbl":           true,
	"colortbl":          true,
	"stylesheet":        true,
	"listtable":         true,
	"listoverridetable": true,
	"revtbl":            true,
	"rsidtable":         true,
	"info":              true,
	"pict":              true,
	"object":            true,
	"objdata":           true,
	"themedata":         true,
	"datastore":         true,
	"xmlnstbl":          true,
	"filetbl":           true,
	"generator":         true,
}

type groupState struct {
	skip bool // 组内容不输出
	uc   int  // \uN 之后的替代字符数
}

type parserState struct {
	out     bytes.Buffer
	pending []byte // 待按代码页解码的字节
	enc     encoding.Encoding
	stack   []groupState
	cur     groupState
	skipN   int // 还需丢弃的替代字符数
}

func extractText(data []byte) []byte {
	s := &parserState{enc: charmap.Windows1252, cur: groupState{uc: 1}}
	for i := 0; i < len(data); {
		c := data[i]
		switch c {
		case '{':
			s.flush()
			s.stack = append(s.stack, s.cur)
			s.skipN = 0
			i++
		case '}':
			s.flush()
			if n := len(s.stack); n > 0 {
				s.cur = s.stack[n-1]
				s.stack = s.stack[:n-1]
			}
			s.skipN = 0
			i++
		case '\\':
			i = s.control(data, i+1)
		case '\r', '\n':
			i++
		default:
			s.text(c)
			i++
		}
	}
	s.flush()
	return s.out.Bytes()
}

// control 解析 data[i:] 处的控制字或控制符号，返回下一个位置
func (s *parserState) control(data []byte, i int) int {
	if i >= len(data) {
		return i
	}
	switch c := data[i]; {
	case c == '\\' || c == '{' || c == '}':
		s.text(c)
		return i + 1
	case c == '\'':
		if i+3 > len(data) {
			return len(data)
		}
		b, err := strconv.ParseUint(string(data[i+1:i+3]), 16, 8)
		if err != nil {
			logger.DebugLogger.Printf("rtf: bad hex escape %q", data[i+1:i+3])
			return i + 3
		}
		s.text(byte(b))
		return i + 3
	case c == '*':
		s.cur.skip = true
		return i + 1
	case c == '~':
		s.text(' ')
		return i + 1
	case c == '\r' || c == '\n':
		s.emit('\n')
		return i + 1
	case !isLetter(c):
		return i + 1
	}

	start := i
	for i < len(data) && isLetter(data[i]) {
		i++
	}
	word := string(data[start:i])

	pstart := i
	if i < len(data) && data[i] == '-' {
		i++
	}
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		i++
	}
	param, err := strconv.Atoi(string(data[pstart:i]))
	hasParam := err == nil
	if i < len(data) && data[i] == ' ' {
		i++
	}

	switch {
	case skipGroups[word]:
		s.cur.skip = true
	case word == "bin" && hasParam:
		i = min(i+max(param, 0), len(data))
	case word == "ansicpg" && hasParam:
		s.flush()
		s.enc = codepage(param)
	case word == "uc" && hasParam:
		s.cur.uc = param
	case word == "u" && hasParam:
		s.flush()
		r := rune(param)
		if r < 0 {
			r += 0x10000
		}
		if !s.cur.skip {
			s.out.Write(utf8.AppendRune(nil, r))
		}
		s.skipN = s.cur.uc
	case word == "par" || word == "line" || word == "sect" || word == "page" || word == "row":
		s.emit('\n')
	case word == "tab" || word == "cell":
		s.emit('\t')
	}
	return i
}

// text 正文字节，先按代码页缓存
func (s *parserState) text(b byte) {
	if s.skipN > 0 {
		s.skipN--
		return
	}
	if s.cur.skip {
		return
	}
	s.pending = append(s.pending, b)
}

func (s *parserState) emit(b byte) {
	if s.cur.skip {
		return
	}
	s.flush()
	s.out.WriteByte(b)
}

func (s *parserState) flush() {
	if len(s.pending) == 0 {
		return
	}
	decoded, err := s.enc.NewDecoder().Bytes(s.pending)
	if err != nil {
		logger.DebugLogger.Printf("rtf: decode %d bytes: %v", len(s.pending), err)
		decoded = s.pending
	}
	s.out.Write(decoded)
	s.pending = s.pending[:0]
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// codepage \ansicpgN 对应的编码，未知时按 Windows-1252
func codepage(n int) encoding.Encoding {
	switch n {
	case 874:
		return charmap.Windows874
	case 932:
		return japanese.ShiftJIS
	case 936:
		return simplifiedchinese.GBK
	case 949:
		return korean.EUCKR
	case 950:
		return traditionalchinese.Big5
	case 1250:
		return charmap.Windows1250
	case 1251:
		return charmap.Windows1251
	case 1253:
		return charmap.Windows1253
	case 1254:
		return charmap.Windows1254
	case 1255:
		return charmap.Windows1255
	case 1256:
		return charmap.Windows1256
	case 1257:
		return charmap.Windows1257
	case 1258:
		return charmap.Windows1258
	}
	return charmap.Windows1252
}
