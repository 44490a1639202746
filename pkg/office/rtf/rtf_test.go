package rtf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want []string
	}{
		"plain": {
			doc:  `{\rtf1\ansi\deff0 Pine tree\par ping}`,
			want: []string{"Pine", "tree", "ping"},
		},
		"skips_tables": {
			doc:  `{\rtf1{\fonttbl{\f0 Times;}}{\colortbl;\red0\green0\blue0;}{\*\generator Riched20;}\f0\fs24 pink}`,
			want: []string{"pink"},
		},
		"hex_escape": {
			doc:  `{\rtf1\ansi\ansicpg1252 caf\'e9 }`,
			want: []string{"café"},
		},
		"gbk": {
			doc:  `{\rtf1\ansi\ansicpg936 \'d6\'d0\'ce\'c4}`,
			want: []string{"中文"},
		},
		"unicode_with_fallback": {
			doc:  `{\rtf1\uc1 \u20013?\u25991?}`,
			want: []string{"中文"},
		},
		"escaped_braces": {
			doc:  `{\rtf1 a\{b\}c\\d}`,
			want: []string{`a{b}c\d`},
		},
		"tab_and_nested_group": {
			doc:  `{\rtf1 {\b ping}\tab pint}`,
			want: []string{"ping", "pint"},
		},
		"bin_payload": {
			doc:  `{\rtf1 pin\bin3 xyz pine}`,
			want: []string{"pin", "pine"},
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, strings.Fields(string(extractText([]byte(c.doc)))))
		})
	}
}

func TestOfficeRtfParser(t *testing.T) {
	dir := t.TempDir()

	t.Run("not_rtf", func(t *testing.T) {
		path := filepath.Join(dir, "plain.rtf")
		require.NoError(t, os.WriteFile(path, []byte("just text"), 0o644))
		_, err := (&OfficeRtfParser{}).Parse(path)
		assert.ErrorIs(t, err, ErrNotRtf)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := (&OfficeRtfParser{}).Parse(filepath.Join(dir, "nope.rtf"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
