package extract

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "statement.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

func TestXLSXRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Stock Name", "ISIN", "Quantity"},
		{"  Reliance Industries  ", "INE002A01018", 10},
	})

	rows := XLSXRows(path)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Stock Name" || rows[0][2] != "Quantity" {
		t.Errorf("Unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Reliance Industries" {
		t.Errorf("Expected trimmed cell, got %q", rows[1][0])
	}
	if rows[1][2] != "10" {
		t.Errorf("Expected stringified number, got %q", rows[1][2])
	}
}

func TestXLSXRowsUnreadableFile(t *testing.T) {
	if rows := XLSXRows(filepath.Join(t.TempDir(), "missing.xlsx")); rows != nil {
		t.Errorf("Expected nil rows for a missing file, got %v", rows)
	}
}
