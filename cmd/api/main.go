package main

import (
	"os"

	"github.com/yigit/majorpath/internal/pkg/logger"
	"github.com/yigit/majorpath/internal/server"
)

// @title MajorPath API
// @version 1.0
// @description Questionnaire-based university major recommendations

// @contact.name MajorPath API Support

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization. Prefix with "Bearer ".

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup functions have already logged the details
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
