package main

import (
	"os"

	"github.com/asmit/placenet/internal/pkg/logger"
	"github.com/asmit/placenet/internal/server"
)

// @title PlaceNet API
// @version 1.0
// @description REST backend for the college training and placement cell: accounts, drives, applications and internship records.

// @contact.name Placement Cell
// @contact.email placement@college.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully")
}
