package plainmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"wordfreq/pkg/logger"
)

// TextMarkdownParser 提取Markdown正文、行内代码与代码块，跳过原始HTML和链接地址
type TextMarkdownParser struct{}

var md = goldmark.New()

func (p *TextMarkdownParser) ParseMd(content []byte) string {
	root := md.Parser().Parse(text.NewReader(content))

	var b strings.Builder
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			// 块结束时换行，避免相邻块的单词粘连
			if node.Type() == ast.TypeBlock {
				b.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(content))
			if n.SoftLineBreak() || n.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(n.Value)
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(content))
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	logger.DebugLogger.Printf("markdown text: %d bytes", b.Len())

	return strings.TrimSpace(b.String())
}

func (p *TextMarkdownParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read markdown file: %w", err)
	}
	return []byte(p.ParseMd(content)), nil
}
