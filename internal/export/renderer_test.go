package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	"github.com/buildcrew/construction_mgmt_app/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDocument() domain.ReportDocument {
	return domain.ReportDocument{
		Title:     "Payment History Report",
		DateRange: "2024-03-01 to 2024-03-31",
		Columns:   []string{"ID", "Worker", "Site", "Date", "Amount", "Mode", "Description"},
		Rows: [][]string{
			{"7", "1", "10", "2024-03-01", "1250.50", "BANK_TRANSFER", "March wages"},
			{"8", "2", "-", "2024-03-15", "900.00", "CASH", "Mid-month payout"},
		},
		Summary: "Total Payments: 2 | Total Amount: 2150.50",
	}
}

func TestPDFRendererWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	err := export.NewPDFRenderer().Render(sampleDocument(), path)

	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	header := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(header)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(header))
}

func TestExcelRendererWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	doc := sampleDocument()

	err := export.NewExcelRenderer().Render(doc, path)
	require.NoError(t, err)

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	title, err := wb.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, doc.Title, title)

	rows, err := wb.GetRows(sheet)
	require.NoError(t, err)
	// Title, date range, spacer, header, two data rows, summary.
	require.GreaterOrEqual(t, len(rows), 6)

	var headerRow []string
	for _, row := range rows {
		if len(row) > 0 && row[0] == "ID" {
			headerRow = row
			break
		}
	}
	require.NotNil(t, headerRow)
	assert.Equal(t, doc.Columns, headerRow[:len(doc.Columns)])
}

func TestExcelRendererHandlesEmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	doc := domain.ReportDocument{
		Title:   "Worker List Report",
		Columns: []string{"ID", "Name"},
		Summary: "Total Workers: 0",
	}

	err := export.NewExcelRenderer().Render(doc, path)

	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
