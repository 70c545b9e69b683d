package employee

// EmployeeRequest is the body of POST and PUT. An "id" in a PUT body is
// ignored; the path decides which record is updated. encoding/json matches
// keys case-insensitively, so a "doB" key fills DOB as well. Field rules
// live in employeeform.Validator, not in binding tags.
type EmployeeRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmployeeCode string `json:"employeeCode"`
	Contact      string `json:"contact"`
	DOB          string `json:"dob"`
	Address      string `json:"address"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmployeeCode string `json:"employeeCode"`
	Contact      string `json:"contact"`
	DOB          string `json:"dob"`
	Address      string `json:"address"`
}
