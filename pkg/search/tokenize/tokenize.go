// Package tokenize splits extracted text into words for the index.
//
// Word boundaries follow Unicode UAX #29. Segments without any letter or
// digit (punctuation, whitespace, emoji) are dropped.
package tokenize

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

type Tokenizer struct {
	fold      bool
	nfc       bool
	minLength int
	caser     cases.Caser
}

type Option func(*Tokenizer)

// WithCaseFold 对单词做大小写折叠
func WithCaseFold() Option {
	return func(t *Tokenizer) {
		t.fold = true
	}
}

// WithoutNFC 关闭 NFC 规范化
func WithoutNFC() Option {
	return func(t *Tokenizer) {
		t.nfc = false
	}
}

// WithMinLength 丢弃字符数少于 n 的单词
func WithMinLength(n int) Option {
	return func(t *Tokenizer) {
		t.minLength = n
	}
}

func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{nfc: true, caser: cases.Fold()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Normalize 对单个单词做与 Tokens 相同的规范化
func (t *Tokenizer) Normalize(word string) string {
	if t.nfc {
		word = norm.NFC.String(word)
	}
	if t.fold {
		word = t.caser.String(word)
	}
	return word
}

// Tokens 返回 text 中的全部单词，保持出现顺序
func (t *Tokenizer) Tokens(text string) []string {
	var words []string
	state := -1
	var segment string
	for len(text) > 0 {
		segment, text, state = uniseg.FirstWordInString(text, state)
		if !isWord(segment) {
			continue
		}
		if t.minLength > 0 && utf8.RuneCountInString(segment) < t.minLength {
			continue
		}
		words = append(words, t.Normalize(segment))
	}
	return words
}

func isWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
