// Package index feeds words extracted from files into a frequency trie and
// answers exact and prefix queries against it.
package index

import (
	"fmt"

	"wordfreq/internal"
	"wordfreq/pkg/logger"
	"wordfreq/pkg/search/tokenize"
	"wordfreq/pkg/search/trie"
)

// Resolver 根据文件路径选择解析器
type Resolver func(filePath string) (internal.FileParser, error)

type Stats struct {
	Files  int // 成功索引的文件数
	Tokens int // 插入的单词总数（含重复）
	Words  int // 不同单词数
	Nodes  int // 前缀树节点数
}

// Splitter 把文本切分成单词，并对查询词做同样的规范化
type Splitter interface {
	Tokens(text string) []string
	Normalize(word string) string
}

// Index 非并发安全
type Index struct {
	trie      *trie.Trie
	tokenizer Splitter
	resolve   Resolver
	files     int
	tokens    int
}

type Option func(*Index)

func WithTokenizer(t Splitter) Option {
	return func(x *Index) {
		x.tokenizer = t
	}
}

func WithResolver(r Resolver) Option {
	return func(x *Index) {
		x.resolve = r
	}
}

func New(opts ...Option) *Index {
	x := &Index{
		trie:      trie.NewTrie(),
		tokenizer: tokenize.New(),
		resolve:   internal.ParserFor,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Add 插入单个单词，不做分词
func (x *Index) Add(word string) error {
	if word == "" {
		return fmt.Errorf("add: %w", trie.ErrInvalidArgument)
	}
	if err := x.trie.Insert(x.tokenizer.Normalize(word)); err != nil {
		return err
	}
	x.tokens++
	return nil
}

// AddText 分词后逐个插入，返回插入的单词数
func (x *Index) AddText(text []byte) int {
	cnt := 0
	for _, w := range x.tokenizer.Tokens(string(text)) {
		if err := x.trie.Insert(w); err != nil {
			logger.DebugLogger.Printf("skip token %q: %v", w, err)
			continue
		}
		cnt++
	}
	x.tokens += cnt
	return cnt
}

// AddFile 解析文件并索引其中的文本
func (x *Index) AddFile(filePath string) (int, error) {
	parser, err := x.resolve(filePath)
	if err != nil {
		return 0, fmt.Errorf("index %s: %w", filePath, err)
	}
	logger.Logger.Printf("indexing %s with %T", filePath, parser)

	text, err := parser.Parse(filePath)
	if err != nil {
		return 0, fmt.Errorf("index %s: %w", filePath, err)
	}
	n := x.AddText(text)
	x.files++
	logger.Logger.Printf("indexed %s: %d bytes, %d words", filePath, len(text), n)
	return n, nil
}

func (x *Index) Lookup(word string) (int, error) {
	if word == "" {
		return 0, fmt.Errorf("lookup: %w", trie.ErrInvalidArgument)
	}
	return x.trie.Lookup(x.tokenizer.Normalize(word))
}

func (x *Index) Complete(prefix string) ([]trie.Completion, error) {
	if prefix == "" {
		return nil, fmt.Errorf("complete: %w", trie.ErrInvalidArgument)
	}
	return x.trie.Complete(x.tokenizer.Normalize(prefix))
}

func (x *Index) Stats() Stats {
	return Stats{
		Files:  x.files,
		Tokens: x.tokens,
		Words:  x.trie.Len(),
		Nodes:  x.trie.Size(),
	}
}
