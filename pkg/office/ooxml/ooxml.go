// Package ooxml reads text out of zip-packaged XML documents (OOXML and
// OpenDocument).
package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"
)

// ErrMemberNotFound 压缩包中缺少所需的XML文件
var ErrMemberNotFound = errors.New("member not found")

// TextSpec 描述从XML中取哪些文本
type TextSpec struct {
	Text  map[string]bool // 这些元素（本地名）内的字符数据会被收集
	Break map[string]bool // 这些元素结束时追加换行
}

// CollectText 流式解析XML，收集 Text 元素内部的字符数据
func CollectText(r io.Reader, ts TextSpec) ([]byte, error) {
	d := xml.NewDecoder(r)
	var buf bytes.Buffer
	depth := 0 // 当前处于多少层 Text 元素内
	for {
		token, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return buf.Bytes(), fmt.Errorf("xml: %w", err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			if ts.Text[t.Name.Local] {
				depth++
			}
		case xml.EndElement:
			if ts.Text[t.Name.Local] && depth > 0 {
				depth--
			}
			if ts.Break[t.Name.Local] {
				buf.WriteByte('\n')
			}
		case xml.CharData:
			if depth > 0 {
				buf.Write(t)
			}
		}
	}
	return buf.Bytes(), nil
}

// Find 按名称查找压缩包成员
func Find(files []*zip.File, name string) (*zip.File, error) {
	for _, f := range files {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, name)
}

// Numbered 返回 dir 下匹配 prefix<N>.xml 的成员，按 N 升序
func Numbered(files []*zip.File, dir, prefix string) []*zip.File {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)\.xml$`)
	type numbered struct {
		n int
		f *zip.File
	}
	var found []numbered
	for _, f := range files {
		if path.Dir(f.Name) != dir {
			continue
		}
		m := re.FindStringSubmatch(path.Base(f.Name))
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		found = append(found, numbered{n, f})
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].n < found[j].n
	})

	result := make([]*zip.File, len(found))
	for i, x := range found {
		result[i] = x.f
	}
	return result
}

// CollectMember 打开成员并收集文本
func CollectMember(f *zip.File, ts TextSpec) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	text, err := CollectText(rc, ts)
	if err != nil {
		return text, fmt.Errorf("%s: %w", f.Name, err)
	}
	return text, nil
}

// Set 构造元素名集合
func Set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
