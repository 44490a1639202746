// Package compressfile extracts archives into a temporary directory and
// hands every member to the parser registered for its file type.
package compressfile

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"wordfreq/internal"
	"wordfreq/pkg/logger"
)

// sanitizePath 防止路径遍历，结果总是相对路径
func sanitizePath(name string) string {
	sanitized := strings.TrimPrefix(filepath.Join("/", name), "/")
	if sanitized != name {
		logger.DebugLogger.Printf("sanitized path %s -> %s", name, sanitized)
	}
	return sanitized
}

// writeMember 将 r 写入 dir 下的 name，必要时创建父目录
func writeMember(dir, name string, r io.Reader) error {
	target := filepath.Join(dir, sanitizePath(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

// extract 在临时目录中执行 fill，然后解析目录下的全部文件
func extract(pattern string, fill func(dir string) error) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := fill(tmpDir); err != nil {
		return nil, err
	}

	content, cnt, err := WalkDir(tmpDir)
	if err != nil {
		return nil, err
	}
	logger.Logger.Printf("%s: parsed %d files", strings.TrimSuffix(pattern, "_"), cnt)
	return content, nil
}

// WalkDir 按后缀选择解析器解析 dir 下的所有文件，返回拼接后的文本与文件数
func WalkDir(dir string) ([]byte, int, error) {
	var buf bytes.Buffer
	var cnt int

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		parser, err := internal.ParserFor(path)
		if err != nil {
			return err
		}
		logger.DebugLogger.Printf("walk %s with %T", strings.TrimPrefix(path, dir), parser)
		content, err := parser.Parse(path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", strings.TrimPrefix(path, dir), err)
		}

		buf.Write(content)
		buf.WriteString("\n")
		cnt++
		return nil
	})
	return buf.Bytes(), cnt, err
}

// streamName 单流压缩文件（gz、bz2、xz）解压后的文件名
func streamName(filePath, suffix string) string {
	base := filepath.Base(filePath)
	if strings.HasSuffix(strings.ToLower(base), ".tgz") {
		return base[:len(base)-len(".tgz")] + ".tar"
	}
	if strings.HasSuffix(strings.ToLower(base), suffix) {
		return base[:len(base)-len(suffix)]
	}
	return base
}

// parseStream 解压单流文件后按内部文件名继续解析
func parseStream(pattern, name string, r io.Reader) ([]byte, error) {
	return extract(pattern, func(dir string) error {
		return writeMember(dir, name, r)
	})
}
