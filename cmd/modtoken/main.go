package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/campusrate/campusrate/internal/config"
	"github.com/campusrate/campusrate/internal/pkg/auth"
	"github.com/campusrate/campusrate/internal/pkg/helpers"
	"github.com/campusrate/campusrate/internal/pkg/logger"
)

// modtoken mints a moderator JWT for the /api/v1/moderation routes.
// It reads the same configuration as the API server so the signing
// secret always matches.
func main() {
	userID := flag.String("user", "", "user id embedded in the token (required)")
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to the configuration file")
	flag.Parse()

	if *userID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.Moderation.TokenSecret,
		TokenExpiration: helpers.ParseDuration(cfg.Moderation.TokenExpiration, 12*time.Hour),
		TokenIssuer:     cfg.Moderation.TokenIssuer,
	})

	token, err := jwtService.GenerateToken(*userID, auth.RoleModerator)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate moderation token")
		os.Exit(1)
	}

	fmt.Println(token)
}
