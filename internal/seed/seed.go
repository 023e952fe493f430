// Package seed creates the data the application cannot run without.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/asmit/placenet/internal/app/models"
	appRepos "github.com/asmit/placenet/internal/app/repositories"
	pkgAuth "github.com/asmit/placenet/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@placenet.local"
	defaultAdminPassword = "ChangeMe123!"
)

// EnsureAdminAccount creates a bootstrap administrator when the database has
// none, so a fresh deployment can log in and moderate registrations. The
// credentials come from ADMIN_EMAIL and ADMIN_PASSWORD, falling back to
// development defaults.
func EnsureAdminAccount(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	count, err := userRepo.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("error counting admin accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
		lgr.Warn().Str("email", email).Msg("Seeding default admin with a development password, change it before going live")
	}

	hashed, err := pkgAuth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	user := &appModels.User{
		Email:     email,
		Password:  hashed,
		FirstName: "Placement",
		LastName:  "Cell",
		Role:      appModels.RoleAdmin,
		Status:    appModels.AccountActive,
	}
	profile := &appModels.AdminProfile{
		Designation: "Training and Placement Officer",
	}

	if err := userRepo.CreateAdminAccount(ctx, user, profile); err != nil {
		return fmt.Errorf("error creating admin account: %w", err)
	}

	lgr.Info().Str("email", email).Msg("Bootstrap admin account created")
	return nil
}
