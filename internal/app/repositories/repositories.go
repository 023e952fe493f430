package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	StudentRepository      *StudentRepository
	AcademicRepository     *AcademicRepository
	DepartmentRepository   *DepartmentRepository
	ProgramRepository      *ProgramRepository
	CompanyRepository      *CompanyRepository
	DriveRepository        *DriveRepository
	ApplicationRepository  *ApplicationRepository
	InternshipRepository   *InternshipRepository
	RequirementRepository  *RequirementRepository
	NotificationRepository *NotificationRepository
	ExpenditureRepository  *ExpenditureRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		StudentRepository:      NewStudentRepository(db),
		AcademicRepository:     NewAcademicRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		ProgramRepository:      NewProgramRepository(db),
		CompanyRepository:      NewCompanyRepository(db),
		DriveRepository:        NewDriveRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		InternshipRepository:   NewInternshipRepository(db),
		RequirementRepository:  NewRequirementRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		ExpenditureRepository:  NewExpenditureRepository(db),
	}
}
