package charset

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDecode(t *testing.T) {
	t.Run("utf8_passthrough", func(t *testing.T) {
		out, err := Decode([]byte("pin pine 中文"))
		require.NoError(t, err)
		assert.Equal(t, "pin pine 中文", string(out))
	})

	t.Run("utf8_bom_stripped", func(t *testing.T) {
		out, err := Decode(append([]byte{0xEF, 0xBB, 0xBF}, "testing"...))
		require.NoError(t, err)
		assert.Equal(t, "testing", string(out))
	})

	t.Run("utf16le_bom", func(t *testing.T) {
		raw, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("pinetree"))
		require.NoError(t, err)
		out, err := Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, "pinetree", string(out))
	})

	t.Run("latin1", func(t *testing.T) {
		text := strings.Repeat("Le café est très agréable, la crème brûlée aussi. ", 8)
		raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
		require.NoError(t, err)
		require.False(t, utf8.Valid(raw))

		out, err := Decode(raw)
		require.NoError(t, err)
		assert.True(t, utf8.Valid(out))
		assert.Contains(t, string(out), "café")
	})
}
