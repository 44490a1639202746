package compressfile

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"wordfreq/internal"
)

var members = map[string]string{
	"a/words.txt": "test testament testing",
	"b/more.txt":  "ping pin pink",
}

func tarBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "a/", Typeflag: tar.TypeDir, Mode: 0o755}))
	for name, body := range members {
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Typeflag: tar.TypeReg, Mode: 0o644, Size: int64(len(body))}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

func gzipBytes(t *testing.T, name string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	gw.Name = name
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func assertAllMembers(t *testing.T, out []byte) {
	t.Helper()
	for _, body := range members {
		assert.Contains(t, string(out), body)
	}
}

func TestZipFileParser(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("a/")
	require.NoError(t, err)
	for name, body := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	out, err := (&ZipFileParser{}).Parse(writeFile(t, "words.zip", buf.Bytes()))
	require.NoError(t, err)
	assertAllMembers(t, out)
}

func TestTarFileParser(t *testing.T) {
	out, err := (&TarFileParser{}).Parse(writeFile(t, "words.tar", tarBytes(t)))
	require.NoError(t, err)
	assertAllMembers(t, out)
}

func TestGzFileParser(t *testing.T) {
	t.Run("tar_gz", func(t *testing.T) {
		out, err := (&GzFileParser{}).Parse(writeFile(t, "words.tar.gz", gzipBytes(t, "", tarBytes(t))))
		require.NoError(t, err)
		assertAllMembers(t, out)
	})

	t.Run("tgz", func(t *testing.T) {
		out, err := (&GzFileParser{}).Parse(writeFile(t, "words.tgz", gzipBytes(t, "", tarBytes(t))))
		require.NoError(t, err)
		assertAllMembers(t, out)
	})

	t.Run("single_file", func(t *testing.T) {
		out, err := (&GzFileParser{}).Parse(writeFile(t, "words.gz", gzipBytes(t, "words.txt", []byte("pinetree pine"))))
		require.NoError(t, err)
		assert.Equal(t, "pinetree pine", strings.TrimSpace(string(out)))
	})

	t.Run("not_gzip", func(t *testing.T) {
		_, err := (&GzFileParser{}).Parse(writeFile(t, "bad.gz", []byte("plain")))
		assert.Error(t, err)
	})
}

func TestXzFileParser(t *testing.T) {
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = xw.Write(tarBytes(t))
	require.NoError(t, err)
	require.NoError(t, xw.Close())

	out, err := (&XzFileParser{}).Parse(writeFile(t, "words.tar.xz", buf.Bytes()))
	require.NoError(t, err)
	assertAllMembers(t, out)
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "etc/passwd", sanitizePath("../../etc/passwd"))
	assert.Equal(t, "etc/passwd", sanitizePath("/etc/passwd"))
	assert.Equal(t, "a/b.txt", sanitizePath("a/b.txt"))
}

func TestStreamName(t *testing.T) {
	assert.Equal(t, "words.tar", streamName("/tmp/words.tar.gz", ".gz"))
	assert.Equal(t, "words.tar", streamName("words.tgz", ".gz"))
	assert.Equal(t, "notes.txt", streamName("notes.txt.xz", ".xz"))
	assert.Equal(t, "plain", streamName("plain", ".bz2"))
}

func TestWalkDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeMember(dir, "../escape/one.txt", strings.NewReader("one")))
	require.NoError(t, writeMember(dir, "nested/two.txt", strings.NewReader("two")))

	_, err := os.Stat(filepath.Join(dir, "escape", "one.txt"))
	require.NoError(t, err)

	out, cnt, err := WalkDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)
	assert.Equal(t, "one\ntwo\n", string(out))
}

func TestCorruptArchives(t *testing.T) {
	cases := map[string]internal.FileParser{
		"bad.bz2": &Bz2FileParser{},
		"bad.rar": &RarFileParser{},
		"bad.7z":  &SevenZFileParser{},
	}
	for name, parser := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parser.Parse(writeFile(t, name, []byte("plain text, not an archive")))
			assert.Error(t, err)

			_, err = parser.Parse(filepath.Join(t.TempDir(), "missing_"+name))
			assert.Error(t, err)
		})
	}
}
