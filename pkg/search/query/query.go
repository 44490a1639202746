package query

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"wordfreq/pkg/search/trie"
)

// Searcher 查询接口，*index.Index 与 *trie.Trie 均满足
type Searcher interface {
	Lookup(word string) (int, error)
	Complete(prefix string) ([]trie.Completion, error)
}

// Batch 一组待执行的查询
type Batch struct {
	Lookup   []string `yaml:"lookup,omitempty"`
	Complete []string `yaml:"complete,omitempty"`
}

type LookupResult struct {
	Word      string
	Frequency int
}

type CompleteResult struct {
	Prefix      string
	Completions []trie.Completion
}

type Report struct {
	Lookups     []LookupResult
	Completions []CompleteResult
}

// Load 从 YAML 文件读取查询
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read query file: %w", err)
	}
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse query file %s: %w", path, err)
	}
	return &b, nil
}

// Merge 追加 other 中的查询
func (b *Batch) Merge(other *Batch) {
	if other == nil {
		return
	}
	b.Lookup = append(b.Lookup, other.Lookup...)
	b.Complete = append(b.Complete, other.Complete...)
}

func (b *Batch) Empty() bool {
	return len(b.Lookup) == 0 && len(b.Complete) == 0
}

// Run 依次执行查询，遇到第一个错误即返回
func Run(s Searcher, b *Batch) (*Report, error) {
	r := &Report{}
	for _, w := range b.Lookup {
		n, err := s.Lookup(w)
		if err != nil {
			return nil, fmt.Errorf("lookup %q: %w", w, err)
		}
		r.Lookups = append(r.Lookups, LookupResult{Word: w, Frequency: n})
	}
	for _, p := range b.Complete {
		c, err := s.Complete(p)
		if err != nil {
			return nil, fmt.Errorf("complete %q: %w", p, err)
		}
		r.Completions = append(r.Completions, CompleteResult{Prefix: p, Completions: c})
	}
	return r, nil
}

// Write 输出报告。补全结果按单词排序，仅为显示稳定。
func (r *Report) Write(w io.Writer) error {
	width := 0
	for _, l := range r.Lookups {
		width = max(width, runewidth.StringWidth(l.Word))
	}
	for _, l := range r.Lookups {
		if _, err := fmt.Fprintf(w, "lookup %s %d\n", runewidth.FillRight(l.Word, width), l.Frequency); err != nil {
			return err
		}
	}

	for _, c := range r.Completions {
		sorted := append([]trie.Completion(nil), c.Completions...)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Word < sorted[j].Word
		})
		if _, err := fmt.Fprintf(w, "complete %s: %d\n", c.Prefix, len(sorted)); err != nil {
			return err
		}
		width = 0
		for _, s := range sorted {
			width = max(width, runewidth.StringWidth(s.Word))
		}
		for _, s := range sorted {
			if _, err := fmt.Fprintf(w, "  %s %d\n", runewidth.FillRight(s.Word, width), s.Frequency); err != nil {
				return err
			}
		}
	}
	return nil
}
