package usmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFIPSCodes(t *testing.T) {
	// Spot-check a few states.
	assert.Equal(t, "02", FIPSCodes["AK"])
	assert.Equal(t, "15", FIPSCodes["HI"])
	assert.Equal(t, "50", FIPSCodes["VT"])
	assert.Equal(t, "11", FIPSCodes["DC"])
}

func TestPostalFromFIPS(t *testing.T) {
	abbr, ok := PostalFromFIPS("02")
	assert.True(t, ok)
	assert.Equal(t, "AK", abbr)

	_, ok = PostalFromFIPS("99")
	assert.False(t, ok)
}

func TestPostalFromName(t *testing.T) {
	abbr, ok := PostalFromName("Rhode Island")
	assert.True(t, ok)
	assert.Equal(t, "RI", abbr)

	// Matching is on the normalized form.
	abbr, ok = PostalFromName("  rhode   ISLAND ")
	assert.True(t, ok)
	assert.Equal(t, "RI", abbr)

	_, ok = PostalFromName("United States")
	assert.False(t, ok)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "new hampshire", NormalizeName(" New  Hampshire "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestTerritoryFIPS(t *testing.T) {
	codes := TerritoryFIPS()
	assert.Len(t, codes, 9)
	assert.Equal(t, []string{"60", "64", "66", "68", "69", "70", "72", "74", "78"}, codes)

	assert.True(t, IsTerritory("72"))
	assert.False(t, IsTerritory("02"))
	assert.False(t, IsTerritory("11"))
}

func TestAllPostal(t *testing.T) {
	abbrs := AllPostal()
	assert.Len(t, abbrs, 51) // 50 states + DC
	for i := 1; i < len(abbrs); i++ {
		assert.True(t, abbrs[i-1] <= abbrs[i], "abbreviations should be sorted")
	}
}

func TestStateNamesCoverFIPSCodes(t *testing.T) {
	for abbr := range FIPSCodes {
		assert.Contains(t, StateNames, abbr)
	}
	assert.Len(t, StateNames, len(FIPSCodes))
}
