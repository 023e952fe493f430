package models

// RoleType represents the role of a user account
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStudent RoleType = "STUDENT"
)

// AccountStatus represents the activation state of a user account
type AccountStatus string

const (
	AccountPending  AccountStatus = "PENDING"
	AccountActive   AccountStatus = "ACTIVE"
	AccountRejected AccountStatus = "REJECTED"
)

// ApplicationStatus represents the selection state of a placement application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationSelected ApplicationStatus = "SELECTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)
