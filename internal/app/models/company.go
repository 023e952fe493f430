package models

// CompanyType defines a company category based on the 'company_types' table
type CompanyType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" example:"Product"`
}

// Company defines the company model based on the 'companies' table
type Company struct {
	ID            int64        `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	CompanyTypeID int64        `json:"companyTypeId" db:"company_type_id"`
	Website       string       `json:"website,omitempty" db:"website"`
	ContactEmail  string       `json:"contactEmail,omitempty" db:"contact_email"`
	Type          *CompanyType `json:"companyType,omitempty"` // Relation, no db tag
}
