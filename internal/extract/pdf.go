// Package extract converts uploaded statement binaries into analyzable
// content: a text blob for PDFs, rows of string cells for XLSX workbooks.
//
// Extraction never fails hard: a corrupt or image-only document degrades to
// empty content, which downstream parsers treat as "no matches found".
package extract

import (
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFText reads the PDF at path and returns the text of every page in order,
// joined with newlines. A PDF that cannot be opened or decoded yields an
// empty string; there is no OCR, so an image-only PDF also yields "".
func PDFText(path string) string {
	text, err := pdfText(path)
	if err != nil {
		log.Printf("pdf extraction failed for %s: %v", path, err)
		return ""
	}
	return text
}

// pdfText does the actual extraction. The pdf library panics on some
// malformed files, so the panic is converted into an error.
func pdfText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}

	return strings.Join(pages, "\n"), nil
}
