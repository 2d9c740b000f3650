// Seeds the initial ADMIN account. Run once against a fresh database:
//
//	DATABASE_DSN=... go run ./cmd/create-admin
package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/MuhammadZainDev/VOQ-backend/internal/auth/credentials"
	"github.com/MuhammadZainDev/VOQ-backend/internal/config"
	"github.com/MuhammadZainDev/VOQ-backend/internal/db"
	"github.com/MuhammadZainDev/VOQ-backend/internal/logger"
	"github.com/MuhammadZainDev/VOQ-backend/internal/user"
)

const (
	defaultAdminEmail    = "admin@gmail.com"
	defaultAdminPassword = "adminadmin"
)

func main() {
	logger.Init()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	email := envOr("ADMIN_EMAIL", defaultAdminEmail)
	password := envOr("ADMIN_PASSWORD", defaultAdminPassword)

	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to open database", map[string]any{"error": err.Error()})
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Fatal("database unreachable", map[string]any{"error": err.Error()})
	}

	if err := db.RunMigration(ctx, sqlDB); err != nil {
		logger.Fatal("migration failed", map[string]any{"error": err.Error()})
	}

	store := user.NewPostgresStore(&db.DB{DB: sqlDB})

	if _, err := store.FindByEmail(ctx, email); err == nil {
		logger.Info("admin already exists", map[string]any{"email": email})
		return
	} else if !errors.Is(err, user.ErrNotFound) {
		logger.Fatal("admin lookup failed", map[string]any{"error": err.Error()})
	}

	hash, err := credentials.HashPassword(password)
	if err != nil {
		logger.Fatal("failed to hash password", map[string]any{"error": err.Error()})
	}

	admin := &user.User{
		Name:     "Admin",
		Email:    email,
		Number:   "0000000000",
		Password: hash,
		Role:     user.RoleAdmin,
	}

	if err := store.Create(ctx, admin); err != nil {
		logger.Fatal("failed to create admin", map[string]any{"error": err.Error()})
	}

	logger.Info("admin user created successfully", map[string]any{
		"id":    admin.ID,
		"email": admin.Email,
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
