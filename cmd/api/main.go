package main

import (
	"github.com/oguzk/fitpulse/internal/pkg/logger"
	"github.com/oguzk/fitpulse/internal/server"
)

// @title FitPulse API
// @version 1.0
// @description REST backend for the FitPulse fitness platform: gyms, exercises, challenges, workouts and badges.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
}
