package plaintxt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPlainParser(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFtest testament testing"), 0o644))

	p := &TextPlainParser{}
	out, err := p.Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "test testament testing", string(out))

	_, err = p.Parse(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
