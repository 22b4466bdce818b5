package model

// DeptType upload category. Selects which stats counter an upload
// increments and which default department label seeds records whose
// sheet carries no department column.
type DeptType string

const (
	DeptEngines               DeptType = "ENGINES"
	DeptManufacturing         DeptType = "MANUFACTURING"
	DeptEnginesFreshman       DeptType = "ENGINES_FRESHMAN"
	DeptManufacturingFreshman DeptType = "MANUFACTURING_FRESHMAN"
)

// Valid reports whether the tag is one of the four known categories.
func (d DeptType) Valid() bool {
	switch d {
	case DeptEngines, DeptManufacturing, DeptEnginesFreshman, DeptManufacturingFreshman:
		return true
	}
	return false
}

// DefaultDepartment the Arabic department label used when a sheet does
// not supply one.
func (d DeptType) DefaultDepartment() string {
	switch d {
	case DeptEngines:
		return "التقنية الميكانيكية - محركات ومركبات"
	case DeptManufacturing:
		return "التقنية الميكانيكية - تصنيع وإنتاج"
	case DeptEnginesFreshman:
		return "التقنية الميكانيكية - محركات ومركبات (مستجدين)"
	case DeptManufacturingFreshman:
		return "التقنية الميكانيكية - تصنيع وإنتاج (مستجدين)"
	}
	return ""
}

// AddTo bumps the counter owned by this category by n.
func (d DeptType) AddTo(stats *UploadStats, n int) {
	switch d {
	case DeptEngines:
		stats.EnginesCount += n
	case DeptManufacturing:
		stats.ManufCount += n
	case DeptEnginesFreshman:
		stats.EnginesFreshmanCount += n
	case DeptManufacturingFreshman:
		stats.ManufFreshmanCount += n
	}
}
