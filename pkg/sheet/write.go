package sheet

import (
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"alqualis/pkg/faults"
)

const (
	minColWidth = 8
	maxColWidth = 60
)

// WriteXLSX writes one sheet holding header and rows, every cell centered and
// each column sized to its longest value.
func WriteXLSX(w io.Writer, sheetName string, header []string, rows [][]string) error {
	x := excelize.NewFile()
	defer x.Close()

	if sheetName == "" {
		sheetName = "Sheet1"
	}
	if err := x.SetSheetName(x.GetSheetName(0), sheetName); err != nil {
		return faults.Wrap(faults.ValidationError, "sheet name", err)
	}

	widths := make([]int, len(header))
	track := func(rec []string) {
		for i, v := range rec {
			if i < len(widths) {
				if n := utf8.RuneCountInString(v); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	if err := x.SetSheetRow(sheetName, "A1", &header); err != nil {
		return faults.Wrap(faults.StorageIOError, "write header", err)
	}
	track(header)
	for i, rec := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		rec := rec
		if err := x.SetSheetRow(sheetName, cell, &rec); err != nil {
			return faults.Wrap(faults.StorageIOError, "write row", err)
		}
		track(rec)
	}

	if len(header) > 0 {
		center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
		body, err := x.NewStyle(&excelize.Style{Alignment: center})
		if err != nil {
			return faults.Wrap(faults.StorageIOError, "style", err)
		}
		head, err := x.NewStyle(&excelize.Style{Alignment: center, Font: &excelize.Font{Bold: true}})
		if err != nil {
			return faults.Wrap(faults.StorageIOError, "style", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(header), len(rows)+1)
		lastHead, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := x.SetCellStyle(sheetName, "A1", last, body); err != nil {
			return faults.Wrap(faults.StorageIOError, "style", err)
		}
		if err := x.SetCellStyle(sheetName, "A1", lastHead, head); err != nil {
			return faults.Wrap(faults.StorageIOError, "style", err)
		}
		for i, n := range widths {
			col, _ := excelize.ColumnNumberToName(i + 1)
			if err := x.SetColWidth(sheetName, col, col, colWidth(n)); err != nil {
				return faults.Wrap(faults.StorageIOError, "column width", err)
			}
		}
	}

	if err := x.Write(w); err != nil {
		return faults.Wrap(faults.StorageIOError, "write workbook", err)
	}
	return nil
}

func colWidth(chars int) float64 {
	w := chars + 2
	if w < minColWidth {
		w = minColWidth
	}
	if w > maxColWidth {
		w = maxColWidth
	}
	return float64(w)
}
