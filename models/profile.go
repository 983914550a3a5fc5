package models

// Profile is the employee profile returned by the backend profile endpoint.
type Profile struct {
	EmpData      Employee  `json:"emp_data"`
	UserGroup    UserGroup `json:"user_group"`
	MobileNumber string    `json:"mobile_number"`
	Image        string    `json:"image"`
}

// Employee holds the nested employee fields of a profile.
type Employee struct {
	Name           string `json:"name"`
	EmpID          string `json:"emp_id"`
	DepartmentName string `json:"department_name"`
	EmailID        string `json:"email_id"`
	MobileNumber   string `json:"mobile_number"`
	DOB            string `json:"dob"`
	Image          string `json:"image"`
}

// UserGroup carries the role flags of the logged-in user.
type UserGroup struct {
	IsManager bool `json:"is_manager"`
}

// DisplayName returns the best available name for greeting surfaces.
func (p Profile) DisplayName() string {
	return p.EmpData.Name
}

// CompanyInfo is the company display metadata fetched right after login.
type CompanyInfo struct {
	Name   string `json:"name"`
	DBName string `json:"db_name"`
	Image  string `json:"image"`
}
