package dto

// SchoolOption is a school tagged with the campus it belongs to, so the
// caller can narrow the displayed list without a second round trip.
type SchoolOption struct {
	Name   string `json:"name" example:"School of Engineering"`
	Campus string `json:"campus" example:"City Campus"`
}

// DepartmentOption is a department tagged with its school and campus.
type DepartmentOption struct {
	Name   string `json:"name" example:"Computer Science"`
	School string `json:"school" example:"School of Engineering"`
	Campus string `json:"campus" example:"City Campus"`
}

// FilterOptionsResponse carries the valid option sets for every level of the
// campus > school > department hierarchy.
type FilterOptionsResponse struct {
	Campuses    []string           `json:"campuses"`
	Schools     []SchoolOption     `json:"schools"`
	Departments []DepartmentOption `json:"departments"`
}
