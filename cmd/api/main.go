package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/medicore/clinic-api/internal/config"
	"github.com/medicore/clinic-api/internal/handlers"
	"github.com/medicore/clinic-api/internal/middleware"
	"github.com/medicore/clinic-api/internal/services"
	"github.com/medicore/clinic-api/internal/store"
	"github.com/medicore/clinic-api/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	log.Logger = logger

	// --- Database connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("MongoDB is not reachable")
	}
	db := client.Database(cfg.MongoDatabase)
	logger.Info().Str("database", cfg.MongoDatabase).Msg("Connected to MongoDB")

	// --- Stores and indexes ---
	doctorStore := store.NewMongoDoctorStore(db)
	patientStore := store.NewMongoPatientStore(db)
	if err := doctorStore.EnsureIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create doctor indexes")
	}
	if err := patientStore.EnsureIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create patient indexes")
	}

	// --- Services and handlers ---
	tokens, err := utils.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid JWT configuration")
	}
	doctorSvc := services.NewDoctorService(doctorStore, tokens)
	patientSvc := services.NewPatientService(patientStore, doctorStore)
	h := handlers.NewHandler(doctorSvc, patientSvc)

	// --- Gin router ---
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.AuthHeader},
		AllowCredentials: true,
	}
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	h.RegisterRoutes(r, middleware.RequireAuth(doctorStore, tokens))

	logger.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}
