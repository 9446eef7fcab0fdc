package census

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/ancestry-maps/internal/usmap"
)

// Table holds the parsed survey extract: one record per state, keyed by
// the normalized display name, with the sixteen semantic columns.
type Table struct {
	records map[string]map[string]*float64
}

// Lookup returns the attribute map for a normalized state name.
func (t *Table) Lookup(normName string) (map[string]*float64, bool) {
	rec, ok := t.records[normName]
	return rec, ok
}

// Len returns the number of state records.
func (t *Table) Len() int {
	return len(t.records)
}

// ReadTable reads and parses the survey extract. CSV is the default;
// .xlsx files go through the spreadsheet reader.
func ReadTable(path string) (*Table, error) {
	var rows [][]string
	var err error

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readXLSX(path)
	} else {
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	return ParseRows(rows)
}

// ParseRows validates the header against the declared column mapping and
// assembles state records. Rows whose geography name matches no state are
// treated as the extract's trailing summary/footer and dropped with a
// warning; silently keeping them would corrupt the join.
func ParseRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, eris.New("census: table is empty")
	}

	log := zap.L().With(zap.String("component", "census.table"))

	colIdx := mapColumns(rows[0])
	if _, ok := colIdx[GeoColumn]; !ok {
		return nil, eris.Errorf("census: geography column %q not found in header", GeoColumn)
	}
	for _, m := range ColumnMappings {
		if _, ok := colIdx[m.Raw]; !ok {
			return nil, eris.Errorf("census: expected column %q (%s) not found in header", m.Raw, m.Semantic)
		}
	}

	t := &Table{records: make(map[string]map[string]*float64, len(rows)-1)}
	var footers int

	for _, record := range rows[1:] {
		name := strings.TrimSpace(getCol(record, colIdx, GeoColumn))
		if name == "" {
			footers++
			continue
		}
		if _, ok := usmap.PostalFromName(name); !ok {
			footers++
			log.Warn("census: dropping non-state row", zap.String("geography", name))
			continue
		}

		key := usmap.NormalizeName(name)
		if _, dup := t.records[key]; dup {
			return nil, eris.Errorf("census: duplicate row for %q", name)
		}

		rec := make(map[string]*float64, len(ColumnMappings))
		for _, m := range ColumnMappings {
			rec[m.Semantic] = parseFloatPtr(getCol(record, colIdx, m.Raw))
		}
		t.records[key] = rec
	}

	if footers == 0 {
		log.Warn("census: expected trailing summary row was not found")
	}

	return t, nil
}

// readCSV reads all rows from a delimited file.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "census: open table %s", path)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow variable fields

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "census: read table %s", path)
	}
	return rows, nil
}

// readXLSX reads all rows from the first sheet of a spreadsheet.
func readXLSX(path string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "census: open spreadsheet %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("census: spreadsheet %s has no sheets", path)
	}

	sheet := f.Sheets[0]
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = c.String()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
