package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/asmit/placenet/internal/app/controllers"
	"github.com/asmit/placenet/internal/app/models"
	"github.com/asmit/placenet/internal/app/models/dto"
	"github.com/asmit/placenet/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *controllers.Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/refresh", ctrl.Auth.Refresh)
		auth.POST("/logout", ctrl.Auth.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	studentOnly := authMiddleware.RoleRequired(models.RoleStudent)

	authenticated.GET("/auth/me", ctrl.Auth.Me)

	// Account moderation (admin panel)
	users := authenticated.Group("/users")
	{
		users.PUT("/me/admin-profile", adminOnly, ctrl.User.UpdateMyAdminProfile)

		usersAdmin := users.Group("", adminOnly)
		{
			usersAdmin.GET("", ctrl.User.GetAccounts)
			usersAdmin.PUT("/:id/status", ctrl.User.UpdateAccountStatus)
		}
	}

	// Lookup resources: reads for every authenticated user, writes admin only
	academicYears := authenticated.Group("/academic-years")
	{
		academicYears.GET("", ctrl.Academic.GetAllYears)

		academicYearsAdmin := academicYears.Group("", adminOnly)
		{
			academicYearsAdmin.POST("", ctrl.Academic.CreateYear)
			academicYearsAdmin.PUT("/:id", ctrl.Academic.UpdateYear)
			academicYearsAdmin.DELETE("/:id", ctrl.Academic.DeleteYear)
		}
	}

	academicSessions := authenticated.Group("/academic-sessions")
	{
		academicSessions.GET("", ctrl.Academic.GetAllSessions)

		academicSessionsAdmin := academicSessions.Group("", adminOnly)
		{
			academicSessionsAdmin.POST("", ctrl.Academic.CreateSession)
			academicSessionsAdmin.PUT("/:id", ctrl.Academic.UpdateSession)
			academicSessionsAdmin.DELETE("/:id", ctrl.Academic.DeleteSession)
		}
	}

	departments := authenticated.Group("/departments")
	{
		departments.GET("", ctrl.Department.GetAll)
		departments.GET("/:id", ctrl.Department.GetByID)

		departmentsAdmin := departments.Group("", adminOnly)
		{
			departmentsAdmin.POST("", ctrl.Department.Create)
			departmentsAdmin.PUT("/:id", ctrl.Department.Update)
			departmentsAdmin.DELETE("/:id", ctrl.Department.Delete)
		}
	}

	programs := authenticated.Group("/programs")
	{
		programs.GET("", ctrl.Program.GetAll)
		programs.GET("/:id", ctrl.Program.GetByID)

		programsAdmin := programs.Group("", adminOnly)
		{
			programsAdmin.POST("", ctrl.Program.Create)
			programsAdmin.PUT("/:id", ctrl.Program.Update)
			programsAdmin.DELETE("/:id", ctrl.Program.Delete)
		}
	}

	companyTypes := authenticated.Group("/company-types")
	{
		companyTypes.GET("", ctrl.Company.GetAllTypes)

		companyTypesAdmin := companyTypes.Group("", adminOnly)
		{
			companyTypesAdmin.POST("", ctrl.Company.CreateType)
			companyTypesAdmin.PUT("/:id", ctrl.Company.UpdateType)
			companyTypesAdmin.DELETE("/:id", ctrl.Company.DeleteType)
		}
	}

	companies := authenticated.Group("/companies")
	{
		companies.GET("", ctrl.Company.GetAll)
		companies.GET("/:id", ctrl.Company.GetByID)

		companiesAdmin := companies.Group("", adminOnly)
		{
			companiesAdmin.POST("", ctrl.Company.Create)
			companiesAdmin.PUT("/:id", ctrl.Company.Update)
			companiesAdmin.DELETE("/:id", ctrl.Company.Delete)
		}
	}

	// Student profiles. Mutations resolve the student context first so
	// frozen profiles are rejected before any handler runs.
	students := authenticated.Group("/students")
	{
		students.GET("", adminOnly, ctrl.Student.GetAll)
		students.GET("/:id", authMiddleware.StudentContext(), ctrl.Student.GetByID)
		students.PUT("/:id", authMiddleware.StudentContext(), authMiddleware.ProfileUnfrozen(), ctrl.Student.Update)
		students.PUT("/:id/freeze", authMiddleware.StudentContext(), ctrl.Student.Freeze)
		students.PUT("/:id/unfreeze", adminOnly, ctrl.Student.Unfreeze)
	}

	requirements := authenticated.Group("/internship-requirements")
	{
		requirements.GET("", ctrl.Requirement.GetAll)

		requirementsAdmin := requirements.Group("", adminOnly)
		{
			requirementsAdmin.POST("", ctrl.Requirement.Create)
			requirementsAdmin.PUT("/:id", ctrl.Requirement.Update)
			requirementsAdmin.DELETE("/:id", ctrl.Requirement.Delete)
		}
	}

	// Internship records: students manage their own, admins see everything
	internships := authenticated.Group("/internships", authMiddleware.StudentContext())
	{
		internships.GET("", ctrl.Internship.GetAll)
		internships.GET("/:id", ctrl.Internship.GetByID)

		internshipsUnfrozen := internships.Group("", authMiddleware.ProfileUnfrozen())
		{
			internshipsUnfrozen.POST("", ctrl.Internship.Create)
			internshipsUnfrozen.PUT("/:id", ctrl.Internship.Update)
			internshipsUnfrozen.DELETE("/:id", ctrl.Internship.Delete)
		}
	}

	// Placement drives: visible to everyone authenticated, managed by admins.
	// Inactive drives are hidden from students in the service layer.
	drives := authenticated.Group("/drives")
	{
		drives.GET("", ctrl.Drive.GetAll)
		drives.GET("/:id", ctrl.Drive.GetByID)

		drivesAdmin := drives.Group("", adminOnly)
		{
			drivesAdmin.POST("", ctrl.Drive.Create)
			drivesAdmin.PUT("/:id", ctrl.Drive.Update)
			drivesAdmin.DELETE("/:id", ctrl.Drive.Delete)
			drivesAdmin.GET("/:id/applications", ctrl.Placement.ListByDrive)
		}
	}

	// Application lifecycle for the authenticated student
	placements := authenticated.Group("/student-placements", studentOnly, authMiddleware.StudentContext())
	{
		placements.GET("/my-placements", ctrl.Placement.MyPlacements)
		placements.GET("/applied-drives", ctrl.Placement.AppliedDrives)
		placements.POST("/apply", authMiddleware.ProfileUnfrozen(), ctrl.Placement.Apply)
		placements.PUT("/my-placements/:driveId", ctrl.Placement.UpdateStatus)
	}

	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("", ctrl.Notification.GetAll)
		notifications.GET("/:id", ctrl.Notification.GetByID)

		notificationsAdmin := notifications.Group("", adminOnly)
		{
			notificationsAdmin.POST("", ctrl.Notification.Create)
			notificationsAdmin.PUT("/:id", ctrl.Notification.Update)
			notificationsAdmin.DELETE("/:id", ctrl.Notification.Delete)
		}
	}

	expenditures := authenticated.Group("/expenditures", adminOnly)
	{
		expenditures.POST("", ctrl.Expenditure.Create)
		expenditures.GET("", ctrl.Expenditure.GetAll)
		expenditures.GET("/:id", ctrl.Expenditure.GetByID)
		expenditures.PUT("/:id", ctrl.Expenditure.Update)
		expenditures.DELETE("/:id", ctrl.Expenditure.Delete)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
