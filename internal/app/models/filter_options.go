package models

// SchoolOption pairs a school with the campus it belongs to.
type SchoolOption struct {
	Name   string
	Campus string
}

// DepartmentOption pairs a department with its school and campus.
type DepartmentOption struct {
	Name   string
	School string
	Campus string
}

// FilterOptions holds the valid option sets for every filter level given
// some (possibly empty) selection.
type FilterOptions struct {
	Campuses    []string
	Schools     []SchoolOption
	Departments []DepartmentOption
}
