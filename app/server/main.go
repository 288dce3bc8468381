package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/talentscout/scout/config"
	"github.com/talentscout/scout/internal/api/handlers"
	"github.com/talentscout/scout/internal/api/middleware"
	"github.com/talentscout/scout/internal/api/routes"
	"github.com/talentscout/scout/internal/cache"
	"github.com/talentscout/scout/internal/interview"
	"github.com/talentscout/scout/internal/logger"
	"github.com/talentscout/scout/internal/models"
	"github.com/talentscout/scout/internal/providers/llm"
	mongorepo "github.com/talentscout/scout/internal/repositories/mongo"
	pgrepo "github.com/talentscout/scout/internal/repositories/postgres"
	"github.com/talentscout/scout/internal/services"
	"github.com/talentscout/scout/internal/storage"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()
	ctx := context.Background()

	// Init MongoDB (candidate records)
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	l.Info("MongoDB connected")

	// Init PostgreSQL (employers, resume metadata)
	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.PostgresDB.AutoMigrate(&models.Employer{}, &models.ResumeFile{}); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	l.Info("PostgreSQL connected")

	// Init Redis (dashboard cache)
	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	// LLM provider
	provider, err := llm.NewVertexGemini(ctx,
		os.Getenv("GCP_PROJECT_ID"),
		os.Getenv("GCP_LOCATION"),
		os.Getenv("GEMINI_MODEL"),
	)
	if err != nil {
		log.Fatalf("Vertex init error: %v", err)
	}
	defer provider.Close()

	// Resume object store
	bucket := os.Getenv("GCS_BUCKET")
	if bucket == "" {
		log.Fatal("GCS_BUCKET environment variable is not set")
	}
	store, err := storage.NewGCSStore(ctx, bucket)
	if err != nil {
		log.Fatalf("GCS init error: %v", err)
	}
	defer store.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	// Repos
	candidateRepo := mongorepo.NewCandidateRepo(config.MongoDatabase())
	employerRepo := pgrepo.NewEmployerRepo(config.PostgresDB)
	resumeRepo := pgrepo.NewResumeFileRepo(config.PostgresDB)

	// Services
	registry := interview.NewRegistry()
	registry.StartSweeper(ctx, 10*time.Minute, interview.DefaultIdleTTL)
	rcache := cache.NewRedisCache(config.RedisClient)
	candidateSvc := services.NewCandidateService(candidateRepo, rcache, store, l)
	interviewSvc := services.NewInterviewService(registry, provider, candidateSvc, l)
	employerSvc := services.NewEmployerService(employerRepo, jwtSecret)
	resumeSvc := services.NewResumeService(resumeRepo, store, interviewSvc)

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Interview: handlers.NewInterviewHandler(interviewSvc),
		Resume:    handlers.NewResumeHandler(resumeSvc),
		Employer:  handlers.NewEmployerHandler(employerSvc, candidateSvc),
		WS:        handlers.NewWSHandler(interviewSvc, l),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
