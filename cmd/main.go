package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ankietdev/api/config"
	"github.com/ankietdev/api/database"
	_ "github.com/ankietdev/api/docs" // Swagger docs
	"github.com/ankietdev/api/internal/controller"
	"github.com/ankietdev/api/internal/logger"
	"github.com/ankietdev/api/internal/middleware"
	"github.com/ankietdev/api/internal/model"
	"github.com/ankietdev/api/internal/repository"
	"github.com/ankietdev/api/internal/service"
)

// @title AnkietDev Survey API
// @version 1.0
// @description API for building surveys and collecting anonymous answers.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewSurveyRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewSurveyService,
			service.NewAnswerService,
			service.NewContactService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewSurveyController,
			controller.NewContactController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route Gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	surveyCtrl *controller.SurveyController,
	contactCtrl *controller.ContactController,
) {
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)

		surveys := api.Group("/surveys")
		// Public: viewing uses optional identity, answering is anonymous.
		surveys.GET("/:id", middleware.OptionalAuth(cfg), surveyCtrl.GetSurvey)
		surveys.POST("/:id/answers", surveyCtrl.SubmitAnswers)
		// Owner-only operations.
		surveys.POST("", middleware.RequireAuth(cfg), surveyCtrl.CreateSurvey)
		surveys.GET("", middleware.RequireAuth(cfg), surveyCtrl.ListSurveys)
		surveys.PUT("/:id", middleware.RequireAuth(cfg), surveyCtrl.UpdateSurvey)
		surveys.DELETE("/:id", middleware.RequireAuth(cfg), surveyCtrl.DeleteSurvey)

		api.POST("/contact", contactCtrl.SendMessage)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Survey API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.Question{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
