package census

import (
	"strconv"
	"strings"
)

// Survey suppression flags that denote a missing value. "N" is the one
// the ancestry extract uses; the others appear in sibling ACS products.
var nullSentinels = map[string]bool{
	"":    true,
	"N":   true,
	"(X)": true,
	"*":   true,
	"**":  true,
}

// parseFloatPtr parses a percentage cell. Missing values come back nil,
// never zero and never the sentinel string.
func parseFloatPtr(s string) *float64 {
	s = strings.TrimSpace(s)
	if nullSentinels[s] {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// mapColumns builds a trimmed column name → index map.
func mapColumns(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		m[strings.TrimSpace(col)] = i
	}
	return m
}

// getCol gets a column value by name, empty if absent or the row is short.
func getCol(record []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}
