package app

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MuhammadZainDev/VOQ-backend/internal/auth"
	"github.com/MuhammadZainDev/VOQ-backend/internal/auth/handler"
	"github.com/MuhammadZainDev/VOQ-backend/internal/config"
	"github.com/MuhammadZainDev/VOQ-backend/internal/middleware"
	"github.com/MuhammadZainDev/VOQ-backend/internal/session"
	"github.com/MuhammadZainDev/VOQ-backend/internal/user"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	userStore := user.NewPostgresStore(infra.DB)
	authService := auth.NewService(userStore)

	authHandler := handler.NewHandler(
		authService,
		userStore,
		sessionStore,
		cfg.SessionSecret,
		cfg.IsProduction(),
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore, cfg.SessionSecret)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// ----------------------------
	// Routes
	// ----------------------------

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API Running")
	})

	authHandler.RegisterRoutes(router, authMiddleware)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.DB.Close()
	}, nil
}
