package main

import (
	"os"

	"github.com/derya/campusreg/internal/pkg/logger"
	"github.com/derya/campusreg/internal/server"
)

// @title Campus Records API
// @version 1.0
// @description Records management API for students, instructors, courses, schedules and assignments

// @contact.name API Support
// @contact.email support@campusreg.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
