package extract

import (
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXRows opens the workbook at path and materializes the first sheet as
// rows of whitespace-trimmed string cells. Only the first sheet is read.
// A workbook that fails to open is a recoverable condition and yields nil.
func XLSXRows(path string) [][]string {
	f, err := excelize.OpenFile(path)
	if err != nil {
		log.Printf("xlsx open failed for %s: %v", path, err)
		return nil
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		log.Printf("xlsx read failed for %s: %v", path, err)
		return nil
	}

	rows := make([][]string, 0, len(raw))
	for _, r := range raw {
		cells := make([]string, len(r))
		for i, c := range r {
			cells[i] = strings.TrimSpace(c)
		}
		rows = append(rows, cells)
	}

	return rows
}
