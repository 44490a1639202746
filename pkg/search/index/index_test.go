package index

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wordfreq/internal"
	"wordfreq/pkg/search/tokenize"
	"wordfreq/pkg/search/trie"
)

func resolverFor(p internal.FileParser) Resolver {
	return func(string) (internal.FileParser, error) {
		return p, nil
	}
}

func TestIndexAddFile(t *testing.T) {
	t.Run("tokenizes_parsed_text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		parser := NewMockFileParser(ctrl)
		parser.EXPECT().Parse("words.txt").Return([]byte("test, testament, testing.\nping pin pink pine pint testing pinetree"), nil)

		x := New(WithResolver(resolverFor(parser)))
		n, err := x.AddFile("words.txt")
		require.NoError(t, err)
		assert.Equal(t, 10, n)

		got, err := x.Complete("tes")
		require.NoError(t, err)
		assert.ElementsMatch(t, []trie.Completion{
			{Word: "test", Frequency: 1},
			{Word: "testament", Frequency: 1},
			{Word: "testing", Frequency: 2},
		}, got)

		assert.Equal(t, Stats{Files: 1, Tokens: 10, Words: 9, Nodes: 23}, x.Stats())
	})

	t.Run("parse_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		parser := NewMockFileParser(ctrl)
		parseErr := errors.New("corrupt")
		parser.EXPECT().Parse("broken.pdf").Return(nil, parseErr)

		x := New(WithResolver(resolverFor(parser)))
		_, err := x.AddFile("broken.pdf")
		assert.ErrorIs(t, err, parseErr)
		assert.Contains(t, err.Error(), "broken.pdf")
		assert.Equal(t, 0, x.Stats().Files)
	})

	t.Run("resolver_error", func(t *testing.T) {
		x := New(WithResolver(func(string) (internal.FileParser, error) {
			return nil, internal.ErrNoParser
		}))
		_, err := x.AddFile("x.unknown")
		assert.ErrorIs(t, err, internal.ErrNoParser)
	})
}

func TestIndexCaseFold(t *testing.T) {
	x := New(WithTokenizer(tokenize.New(tokenize.WithCaseFold())))
	require.NoError(t, x.Add("Testing"))
	x.AddText([]byte("TESTING testing"))

	n, err := x.Lookup("TeStInG")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestIndexEmptyInput(t *testing.T) {
	x := New()
	assert.ErrorIs(t, x.Add(""), trie.ErrInvalidArgument)

	_, err := x.Lookup("")
	assert.ErrorIs(t, err, trie.ErrInvalidArgument)

	_, err = x.Complete("")
	assert.ErrorIs(t, err, trie.ErrInvalidArgument)

	assert.Equal(t, Stats{}, x.Stats())
}

func TestIndexAddKeepsWordIntact(t *testing.T) {
	x := New()
	require.NoError(t, x.Add("pine tree"))

	n, err := x.Lookup("pine tree")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = x.Lookup("pine")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// commaSplitter 按逗号切分，连续逗号会产生空单词
type commaSplitter struct{}

func (commaSplitter) Tokens(text string) []string { return strings.Split(text, ",") }
func (commaSplitter) Normalize(word string) string { return word }

func TestIndexAddTextSkipsEmptyTokens(t *testing.T) {
	x := New(WithTokenizer(commaSplitter{}))
	assert.Equal(t, 3, x.AddText([]byte("ping,,pin,ping")))
	assert.Equal(t, Stats{Tokens: 3, Words: 2, Nodes: 4}, x.Stats())

	n, err := x.Lookup("ping")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
