package reports

import (
	"fmt"
	"time"

	"mecda-academy/app/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// RenderExcel produces the spreadsheet artifact for a shaped report:
// the academy branding block, a title line, then the header row and
// data matrix.
func RenderExcel(academy *models.AcademyInfo, r Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	lines := [][]interface{}{
		{academy.Name},
		{academy.Address},
		{academy.Contact + " | " + academy.Email},
		{},
		{r.Title},
		{"Generated: " + time.Now().Format("2006-01-02 15:04")},
		{},
	}
	headerRow := make([]interface{}, len(r.Headers))
	for i, h := range r.Headers {
		headerRow[i] = h
	}
	lines = append(lines, headerRow)
	for _, row := range r.Rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		lines = append(lines, cells)
	}

	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &line); err != nil {
			return nil, err
		}
	}

	if len(r.Headers) > 0 {
		lastCol, err := excelize.ColumnNumberToName(len(r.Headers))
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, "A", lastCol, 20); err != nil {
			return nil, err
		}

		titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
			return nil, err
		}

		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"3F51B5"}},
		})
		if err != nil {
			return nil, err
		}
		headerRowNum := 8
		if err := f.SetCellStyle(sheetName,
			fmt.Sprintf("A%d", headerRowNum),
			fmt.Sprintf("%s%d", lastCol, headerRowNum), headerStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
