// Package census reads the ancestry survey extract and joins it onto the
// state feature collection, both per-feature and per-vertex (fortified).
package census

// GeoColumn is the display-name-bearing column used as the join key.
const GeoColumn = "GEO.display-label"

// ColumnMapping binds one raw survey column to its semantic attribute
// name and display label. Declarative so the mapping is validated at load
// time instead of relying on column survival across dataset revisions.
type ColumnMapping struct {
	Raw      string // raw survey column header, e.g. "HC03_VC195"
	Semantic string // joined attribute name, e.g. "pctIrish"
	Display  string // human label, e.g. "Irish"
}

// ColumnMappings enumerates the sixteen percentage columns carried
// through the join.
var ColumnMappings = []ColumnMapping{
	{Raw: "HC03_VC186", Semantic: "pctCzech", Display: "Czech"},
	{Raw: "HC03_VC187", Semantic: "pctDanish", Display: "Danish"},
	{Raw: "HC03_VC188", Semantic: "pctDutch", Display: "Dutch"},
	{Raw: "HC03_VC189", Semantic: "pctEnglish", Display: "English"},
	{Raw: "HC03_VC190", Semantic: "pctFrench", Display: "French"},
	{Raw: "HC03_VC192", Semantic: "pctGerman", Display: "German"},
	{Raw: "HC03_VC194", Semantic: "pctHungarian", Display: "Hungarian"},
	{Raw: "HC03_VC195", Semantic: "pctIrish", Display: "Irish"},
	{Raw: "HC03_VC196", Semantic: "pctItalian", Display: "Italian"},
	{Raw: "HC03_VC198", Semantic: "pctNorwegian", Display: "Norwegian"},
	{Raw: "HC03_VC199", Semantic: "pctPolish", Display: "Polish"},
	{Raw: "HC03_VC200", Semantic: "pctPortuguese", Display: "Portuguese"},
	{Raw: "HC03_VC201", Semantic: "pctRussian", Display: "Russian"},
	{Raw: "HC03_VC203", Semantic: "pctScottish", Display: "Scottish"},
	{Raw: "HC03_VC206", Semantic: "pctSwedish", Display: "Swedish"},
	{Raw: "HC03_VC209", Semantic: "pctWelsh", Display: "Welsh"},
}

// RenderVariables lists the twelve display names rendered by default,
// in grid order.
var RenderVariables = []string{
	"German", "Irish", "English", "Italian",
	"Polish", "French", "Scottish", "Norwegian",
	"Dutch", "Swedish", "Russian", "Welsh",
}

// MappingByDisplay looks up a mapping by its display label.
func MappingByDisplay(display string) (ColumnMapping, bool) {
	for _, m := range ColumnMappings {
		if m.Display == display {
			return m, true
		}
	}
	return ColumnMapping{}, false
}

// SemanticColumns returns the semantic names in mapping order.
func SemanticColumns() []string {
	out := make([]string, len(ColumnMappings))
	for i, m := range ColumnMappings {
		out[i] = m.Semantic
	}
	return out
}
