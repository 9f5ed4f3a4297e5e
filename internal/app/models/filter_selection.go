package models

// FilterLevel identifies one level of the campus > school > department
// hierarchy.
type FilterLevel int

const (
	LevelCampus FilterLevel = iota
	LevelSchool
	LevelDepartment
)

// FilterSelection is a partial selection of the filter hierarchy. A set
// level is only meaningful together with every level above it.
type FilterSelection struct {
	Campus     string `json:"campus,omitempty" form:"campus"`
	School     string `json:"school,omitempty" form:"school"`
	Department string `json:"department,omitempty" form:"department"`
}

// Apply returns a new selection with the given level set to value and every
// lower level cleared. Changing the campus invalidates school and
// department; changing the school invalidates department. This is the
// interactive-change policy only: option resolution never mutates a
// selection, so edit flows can rebuild one level at a time without losing
// the target values.
func (s FilterSelection) Apply(level FilterLevel, value string) FilterSelection {
	switch level {
	case LevelCampus:
		return FilterSelection{Campus: value}
	case LevelSchool:
		return FilterSelection{Campus: s.Campus, School: value}
	case LevelDepartment:
		return FilterSelection{Campus: s.Campus, School: s.School, Department: value}
	}
	return s
}

// Complete reports whether all three levels are set.
func (s FilterSelection) Complete() bool {
	return s.Campus != "" && s.School != "" && s.Department != ""
}
