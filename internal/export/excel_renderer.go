package export

import (
	"fmt"
	"os"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

// ExcelRenderer writes report documents as single-sheet xlsx workbooks.
type ExcelRenderer struct{}

func NewExcelRenderer() portssvc.DocumentRenderer {
	return &ExcelRenderer{}
}

var _ portssvc.DocumentRenderer = (*ExcelRenderer)(nil)

func (r *ExcelRenderer) Render(doc domain.ReportDocument, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	rowIdx := 1
	if err := f.SetCellValue(sheet, cellRef(1, rowIdx), doc.Title); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	rowIdx++

	if doc.DateRange != "" {
		if err := f.SetCellValue(sheet, cellRef(1, rowIdx), doc.DateRange); err != nil {
			return fmt.Errorf("failed to write date range: %w", err)
		}
		rowIdx++
	}
	rowIdx++ // blank spacer row

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headerRow := rowIdx
	for i, col := range doc.Columns {
		if err := f.SetCellValue(sheet, cellRef(i+1, headerRow), col); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	first := cellRef(1, headerRow)
	last := cellRef(len(doc.Columns), headerRow)
	if err := f.SetCellStyle(sheet, first, last, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	rowIdx++

	for _, row := range doc.Rows {
		for i, cell := range row {
			if err := f.SetCellValue(sheet, cellRef(i+1, rowIdx), cell); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
		rowIdx++
	}

	if doc.Summary != "" {
		rowIdx++
		if err := f.SetCellValue(sheet, cellRef(1, rowIdx), doc.Summary); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		// Never leave a partial file behind.
		_ = os.Remove(path)
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func cellRef(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
