// Package services contains the business logic layer. Each service validates
// input, enforces domain rules and maps repository errors to API errors.
package services

import (
	"github.com/asmit/placenet/internal/app/repositories"
	"github.com/asmit/placenet/internal/pkg/auth"
	"github.com/asmit/placenet/internal/pkg/filestorage"
)

// Services bundles all service implementations for dependency injection
type Services struct {
	Auth         AuthService
	User         UserService
	Student      StudentService
	Academic     AcademicService
	Department   DepartmentService
	Program      ProgramService
	Company      CompanyService
	Drive        DriveService
	Placement    PlacementService
	Internship   InternshipService
	Requirement  RequirementService
	Notification NotificationService
	Expenditure  ExpenditureService
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.FileStorage) *Services {
	return &Services{
		Auth:         NewAuthService(repos.UserRepository, repos.TokenRepository, repos.StudentRepository, jwtService),
		User:         NewUserService(repos.UserRepository),
		Student:      NewStudentService(repos.StudentRepository, repos.ApplicationRepository, repos.RequirementRepository, repos.InternshipRepository),
		Academic:     NewAcademicService(repos.AcademicRepository),
		Department:   NewDepartmentService(repos.DepartmentRepository),
		Program:      NewProgramService(repos.ProgramRepository),
		Company:      NewCompanyService(repos.CompanyRepository),
		Drive:        NewDriveService(repos.DriveRepository),
		Placement:    NewPlacementService(repos.DriveRepository, repos.ApplicationRepository, storage),
		Internship:   NewInternshipService(repos.InternshipRepository, storage),
		Requirement:  NewRequirementService(repos.RequirementRepository),
		Notification: NewNotificationService(repos.NotificationRepository),
		Expenditure:  NewExpenditureService(repos.ExpenditureRepository, storage),
	}
}
