package plaintext

import (
	"wordfreq/internal"
	"wordfreq/pkg/plaintext/plainhtml"
	"wordfreq/pkg/plaintext/plainmd"
	"wordfreq/pkg/plaintext/plaintxt"
	"wordfreq/pkg/plaintext/plainxml"
)

func init() {
	internal.RegisterParser(internal.FileTypeTXT, &plaintxt.TextPlainParser{})
	internal.RegisterParser(internal.FileTypeCSV, &plaintxt.TextPlainParser{})
	internal.RegisterParser(internal.FileTypeJSON, &plaintxt.TextPlainParser{})
	internal.RegisterParser(internal.FileTypeTextOther, &plaintxt.TextPlainParser{})
	internal.RegisterParser(internal.FileTypeXML, &plainxml.TextXMLParser{})
	internal.RegisterParser(internal.FileTypeHTML, &plainhtml.TextHTMLParser{})
	internal.RegisterParser(internal.FileTypeMD, &plainmd.TextMarkdownParser{})
}
