package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"alqualis/pkg/faults"
)

// ReadFile picks a reader by extension: .xlsx/.xlsm, .csv, .html/.htm.
func ReadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, faults.Wrap(faults.StorageIOError, "open "+path, err)
	}
	defer f.Close()
	return Read(f, filepath.Ext(path))
}

// Read parses r according to ext (".xlsx", ".csv", ".html" ...).
func Read(r io.Reader, ext string) (Dataset, error) {
	switch strings.ToLower(ext) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(r)
	case ".csv":
		return ReadCSV(r)
	case ".html", ".htm":
		return ReadHTML(r)
	}
	return Dataset{}, faults.New(faults.ValidationError, fmt.Sprintf("unsupported file type %q", ext))
}

// ReadXLSX reads the first sheet of a workbook. Cells come back unformatted
// so long numbers such as CPFs keep every digit.
func ReadXLSX(r io.Reader) (Dataset, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return Dataset{}, faults.Wrap(faults.ValidationError, "read workbook", err)
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return Dataset{}, faults.New(faults.ValidationError, "workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return Dataset{}, faults.Wrap(faults.ValidationError, "read sheet "+sheets[0], err)
	}
	return build(rows), nil
}

// ReadCSV reads comma or semicolon separated text; the separator is taken
// from whichever is more frequent in the header line.
func ReadCSV(r io.Reader) (Dataset, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, faults.Wrap(faults.StorageIOError, "read csv", err)
	}
	b = bytes.TrimPrefix(b, []byte("\uFEFF"))
	first := b
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		first = b[:i]
	}

	cr := csv.NewReader(bytes.NewReader(b))
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Dataset{}, faults.Wrap(faults.ValidationError, "parse csv", err)
		}
		rows = append(rows, rec)
	}
	return build(rows), nil
}

// ReadHTML reads the first <table> of a document. The first row is the
// header whether it uses <th> or <td>.
func ReadHTML(r io.Reader) (Dataset, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Dataset{}, faults.Wrap(faults.ValidationError, "parse html", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return Dataset{}, faults.New(faults.ValidationError, "no table found")
	}
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var rec []string
		tr.Find("th,td").Each(func(_ int, td *goquery.Selection) {
			rec = append(rec, strings.Join(strings.Fields(td.Text()), " "))
		})
		rows = append(rows, rec)
	})
	return build(rows), nil
}
