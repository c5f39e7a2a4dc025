// Package sheet reads tabular files into an in-memory Dataset and writes
// tables back out as workbooks. Callers above this package never see the
// file format.
package sheet

import (
	"strings"

	"alqualis/pkg/textnorm"
)

// Dataset is a header row plus data rows. Every row has len(Header) cells.
type Dataset struct {
	Header []string
	Rows   [][]string
}

// FindColumn returns the index of the first header label that contains every
// keyword of a group, trying groups in order; -1 when nothing matches.
// Matching ignores case and accents, so {"nome", "produtor"} finds
// "Nome do Produtor" and "NOME PRODUTOR".
func (d Dataset) FindColumn(groups ...[]string) int {
	folded := make([]string, len(d.Header))
	for i, h := range d.Header {
		folded[i] = textnorm.Fold(h)
	}
	for _, g := range groups {
	header:
		for i, h := range folded {
			for _, kw := range g {
				if !strings.Contains(h, textnorm.Fold(kw)) {
					continue header
				}
			}
			return i
		}
	}
	return -1
}

// Cell guards against short rows and negative indexes.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Records returns each row as a label -> cell map.
func (d Dataset) Records() []map[string]string {
	out := make([]map[string]string, 0, len(d.Rows))
	for _, r := range d.Rows {
		m := make(map[string]string, len(d.Header))
		for i, h := range d.Header {
			m[h] = Cell(r, i)
		}
		out = append(out, m)
	}
	return out
}

// build trims the header, drops blank rows and pads or cuts every row to the
// header width.
func build(raw [][]string) Dataset {
	var d Dataset
	start := -1
	for i, r := range raw {
		if !blank(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return d
	}
	head := raw[start]
	for len(head) > 0 && strings.TrimSpace(head[len(head)-1]) == "" {
		head = head[:len(head)-1]
	}
	d.Header = make([]string, len(head))
	for i, h := range head {
		d.Header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	}
	for _, r := range raw[start+1:] {
		if blank(r) {
			continue
		}
		row := make([]string, len(d.Header))
		copy(row, r)
		d.Rows = append(d.Rows, row)
	}
	return d
}

func blank(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
