package internal

import (
	"path/filepath"
	"slices"
	"strings"
)

// 文件类型常量定义
const (
	FileTypeHTML      = 1
	FileTypeTXT       = 2
	FileTypeXML       = 3
	FileTypeJSON      = 4
	FileTypeCSV       = 5
	FileTypeTextOther = 6
	FileTypeDOCX      = 8
	FileTypeXLS       = 9
	FileTypeXLSX      = 10
	FileTypePPTX      = 12
	FileTypePDF       = 13
	FileTypeODT       = 15
	FileTypeRTF       = 16
	FileTypeTAR       = 18
	FileTypeGZ        = 19
	FileTypeTARGZ     = 20
	FileTypeZIP       = 21
	FileType7Z        = 22
	FileTypeRAR       = 23
	FileTypeBZ2       = 24
	FileTypeJAR       = 25
	FileTypeWAR       = 26
	FileTypeXZ        = 29
	FileTypeMD        = 37
	FileTypeOther     = 114
	FileTypeVSDX      = 201
)

var suffixMap = map[string]int{
	"html":   FileTypeHTML,
	"htm":    FileTypeHTML,
	"txt":    FileTypeTXT,
	"xml":    FileTypeXML,
	"json":   FileTypeJSON,
	"csv":    FileTypeCSV,
	"md":     FileTypeMD,
	"docx":   FileTypeDOCX,
	"xls":    FileTypeXLS,
	"xlsx":   FileTypeXLSX,
	"pptx":   FileTypePPTX,
	"pdf":    FileTypePDF,
	"odt":    FileTypeODT,
	"rtf":    FileTypeRTF,
	"vsdx":   FileTypeVSDX,
	"tar":    FileTypeTAR,
	"gz":     FileTypeGZ,
	"tar.gz": FileTypeTARGZ,
	"tgz":    FileTypeTARGZ,
	"zip":    FileTypeZIP,
	"7z":     FileType7Z,
	"rar":    FileTypeRAR,
	"bz2":    FileTypeBZ2,
	"jar":    FileTypeJAR,
	"war":    FileTypeWAR,
	"xz":     FileTypeXZ,
}

// 按纯文本处理的其他后缀
var textOtherSuffixes = []string{"css", "js", "log", "ini", "py", "go", "java", "c", "cpp", "h", "sh", "bat", "php", "rb", "yaml", "yml", "toml"}

// GetDynamicFileType 根据文件名后缀判断文件类型
func GetDynamicFileType(filename string) int {
	lower := strings.ToLower(filename)

	ext := strings.TrimPrefix(filepath.Ext(lower), ".")
	if strings.HasSuffix(lower, ".tar.gz") {
		ext = "tar.gz"
	}

	if t, ok := suffixMap[ext]; ok {
		return t
	}
	if slices.Contains(textOtherSuffixes, ext) {
		return FileTypeTextOther
	}
	return FileTypeOther
}
