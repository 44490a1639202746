package trie

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidArgument 单词或前缀为空
var ErrInvalidArgument = errors.New("invalid argument: empty word")

// TrieNode 的子节点以符号为键：合法 UTF-8 字符用其码点，
// 非法字节 b 用负数 -1-b，保证不同字节串不会共用路径。
type TrieNode struct {
	children  map[rune]*TrieNode // 按需创建
	isEnd     bool               // 是否有单词恰好在此结束
	frequency int                // 以此结尾的单词被插入的次数
}

// Completion 补全结果：完整单词及其频次
type Completion struct {
	Word      string
	Frequency int
}

// Trie 词频前缀树。非并发安全，多个 goroutine 共用时由调用方加锁。
type Trie struct {
	root  *TrieNode
	nodes int // 不含根节点
	words int // 不同单词数
}

func NewTrie() *Trie {
	return &Trie{root: &TrieNode{}}
}

// Insert 插入单词，重复插入累加频次
func (t *Trie) Insert(word string) error {
	if word == "" {
		return fmt.Errorf("insert: %w", ErrInvalidArgument)
	}
	node := t.root
	for i := 0; i < len(word); {
		ch, n := nextSymbol(word[i:])
		i += n
		child := node.children[ch]
		if child == nil {
			if node.children == nil {
				node.children = make(map[rune]*TrieNode)
			}
			child = &TrieNode{}
			node.children[ch] = child
			t.nodes++
		}
		node = child
	}
	if !node.isEnd {
		node.isEnd = true
		t.words++
	}
	node.frequency++
	return nil
}

// Lookup 返回单词的插入次数，未插入过返回 0
func (t *Trie) Lookup(word string) (int, error) {
	if word == "" {
		return 0, fmt.Errorf("lookup: %w", ErrInvalidArgument)
	}
	node := t.find(word)
	if node == nil {
		return 0, nil
	}
	return node.frequency, nil
}

// Complete 返回所有以 prefix 开头的单词（含 prefix 本身）及其频次。
// 结果顺序不固定。
func (t *Trie) Complete(prefix string) ([]Completion, error) {
	if prefix == "" {
		return nil, fmt.Errorf("complete: %w", ErrInvalidArgument)
	}
	node := t.find(prefix)
	if node == nil {
		return nil, nil
	}
	var result []Completion
	collect(node, []byte(prefix), &result)
	return result, nil
}

// HasPrefix 判断是否存在以 prefix 开头的路径
func (t *Trie) HasPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	return t.find(prefix) != nil
}

// Len 返回不同单词的数量
func (t *Trie) Len() int {
	return t.words
}

// Size 返回节点数量（不含根节点）
func (t *Trie) Size() int {
	return t.nodes
}

func (t *Trie) find(s string) *TrieNode {
	node := t.root
	for i := 0; i < len(s); {
		ch, n := nextSymbol(s[i:])
		i += n
		node = node.children[ch]
		if node == nil {
			return nil // 路径不存在
		}
	}
	return node
}

// collect 深度优先收集 node 子树中的所有单词。
// path 为原始字节，在兄弟节点间复用底层数组，生成结果时再拷贝成字符串。
func collect(node *TrieNode, path []byte, result *[]Completion) {
	if node.isEnd {
		*result = append(*result, Completion{Word: string(path), Frequency: node.frequency})
	}
	for ch, child := range node.children {
		collect(child, appendSymbol(path, ch), result)
	}
}

// nextSymbol 解码 s 开头的一个符号，返回键与消耗的字节数
func nextSymbol(s string) (rune, int) {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n == 1 {
		return -1 - rune(s[0]), 1
	}
	return r, n
}

// appendSymbol 把键还原成原始字节
func appendSymbol(b []byte, ch rune) []byte {
	if ch < 0 {
		return append(b, byte(-1-ch))
	}
	return utf8.AppendRune(b, ch)
}
