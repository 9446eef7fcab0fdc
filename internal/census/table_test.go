package census

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureHeader builds a header with the geography column and every
// mapped raw column.
func fixtureHeader() []string {
	header := []string{"GEO.id", GeoColumn}
	for _, m := range ColumnMappings {
		header = append(header, m.Raw)
	}
	return header
}

// fixtureRow builds a data row with the given name and the same value in
// every percentage column.
func fixtureRow(name, value string) []string {
	row := []string{"0400000US00", name}
	for range ColumnMappings {
		row = append(row, value)
	}
	return row
}

func TestParseRows_Basic(t *testing.T) {
	table, err := ParseRows([][]string{
		fixtureHeader(),
		fixtureRow("Minnesota", "32.1"),
		fixtureRow("Texas", "7.4"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	rec, ok := table.Lookup("minnesota")
	require.True(t, ok)
	require.NotNil(t, rec["pctGerman"])
	assert.Equal(t, 32.1, *rec["pctGerman"])
}

func TestParseRows_NullSentinel(t *testing.T) {
	table, err := ParseRows([][]string{
		fixtureHeader(),
		fixtureRow("Wyoming", "N"),
	})
	require.NoError(t, err)

	rec, ok := table.Lookup("wyoming")
	require.True(t, ok)
	// "N" must become a null, not zero and not the string itself.
	assert.Nil(t, rec["pctIrish"])
}

func TestParseRows_DropsFooterRow(t *testing.T) {
	table, err := ParseRows([][]string{
		fixtureHeader(),
		fixtureRow("Vermont", "18.9"),
		fixtureRow("United States - note: margin of error applies", ""),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	_, ok := table.Lookup("vermont")
	assert.True(t, ok)
}

func TestParseRows_MissingGeoColumn(t *testing.T) {
	_, err := ParseRows([][]string{
		{"GEO.id", "HC03_VC195"},
		{"0400000US27", "12.2"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), GeoColumn)
}

func TestParseRows_MissingMappedColumn(t *testing.T) {
	header := fixtureHeader()
	header = header[:len(header)-1] // drop the last mapped column

	_, err := ParseRows([][]string{header, fixtureRow("Ohio", "9.9")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColumnMappings[len(ColumnMappings)-1].Raw)
}

func TestParseRows_DuplicateState(t *testing.T) {
	_, err := ParseRows([][]string{
		fixtureHeader(),
		fixtureRow("Ohio", "9.9"),
		fixtureRow("Ohio", "9.9"),
	})
	require.Error(t, err)
}

func TestParseRows_Empty(t *testing.T) {
	_, err := ParseRows(nil)
	require.Error(t, err)
}

func TestParseFloatPtr(t *testing.T) {
	v := parseFloatPtr(" 12.5 ")
	require.NotNil(t, v)
	assert.Equal(t, 12.5, *v)

	assert.Nil(t, parseFloatPtr("N"))
	assert.Nil(t, parseFloatPtr(""))
	assert.Nil(t, parseFloatPtr("(X)"))
	assert.Nil(t, parseFloatPtr("not a number"))
}

func TestColumnMappings_Shape(t *testing.T) {
	assert.Len(t, ColumnMappings, 16)
	assert.Len(t, RenderVariables, 12)

	for _, v := range RenderVariables {
		_, ok := MappingByDisplay(v)
		assert.True(t, ok, "render variable %s must be mapped", v)
	}

	m, ok := MappingByDisplay("Irish")
	require.True(t, ok)
	assert.Equal(t, "HC03_VC195", m.Raw)
	assert.Equal(t, "pctIrish", m.Semantic)
}
