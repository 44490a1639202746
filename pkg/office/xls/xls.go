package xls

import (
	"bytes"
	"fmt"

	exls "github.com/extrame/xls"
)

// OfficeXlsParser 提取 BIFF 格式工作簿中所有非空单元格
type OfficeXlsParser struct{}

func (p *OfficeXlsParser) Parse(filePath string) ([]byte, error) {
	wb, err := exls.Open(filePath, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls %s: %w", filePath, err)
	}

	var buf bytes.Buffer
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				continue
			}
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				if cell := row.Col(c); cell != "" {
					buf.WriteString(cell)
					buf.WriteByte('\t')
				}
			}
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}
