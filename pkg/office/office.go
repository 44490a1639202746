package office

import (
	"wordfreq/internal"
	"wordfreq/pkg/office/docx"
	"wordfreq/pkg/office/odt"
	"wordfreq/pkg/office/pdf"
	"wordfreq/pkg/office/pptx"
	"wordfreq/pkg/office/rtf"
	"wordfreq/pkg/office/vsdx"
	"wordfreq/pkg/office/xls"
	"wordfreq/pkg/office/xlsx"
)

func init() {
	internal.RegisterParser(internal.FileTypeDOCX, &docx.OfficeDocxParser{})
	internal.RegisterParser(internal.FileTypePPTX, &pptx.OfficePptxParser{})
	internal.RegisterParser(internal.FileTypeXLSX, &xlsx.OfficeXlsxParser{})
	internal.RegisterParser(internal.FileTypeODT, &odt.OfficeOdtParser{})
	internal.RegisterParser(internal.FileTypeXLS, &xls.OfficeXlsParser{})
	internal.RegisterParser(internal.FileTypePDF, &pdf.OfficePdfParser{})
	internal.RegisterParser(internal.FileTypeRTF, &rtf.OfficeRtfParser{})
	internal.RegisterParser(internal.FileTypeVSDX, &vsdx.OfficeVsdxParser{})
}
