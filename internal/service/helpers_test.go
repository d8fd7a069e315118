package service

import (
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/config"
	"github.com/google/uuid"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:              "test-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 30 * 24 * time.Hour,
		AnalyticsCacheTTL:      time.Minute,
		Location:               time.UTC,
	}
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

func strPtr(s string) *string {
	return &s
}
