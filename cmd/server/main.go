package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campaignlens/internal/analysis"
	"campaignlens/internal/cache"
	"campaignlens/internal/config"
	"campaignlens/internal/repository"
	"campaignlens/internal/service"
	"campaignlens/internal/transport/rest"
	"campaignlens/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	campaignRepo := repository.NewCampaignRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)
	answerRepo := repository.NewAnswerRepo(db)

	// Initialize caches
	leadQueue := cache.NewLeadQueueCache(rdb)
	packStatus := cache.NewPackStatusCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	campaignSvc := service.NewCampaignService(campaignRepo, questionRepo)
	submissionSvc := service.NewSubmissionService(campaignRepo, submissionRepo, answerRepo)

	var builderOpts []analysis.BuilderOption
	if cfg.TextSampleCap > 0 {
		builderOpts = append(builderOpts, analysis.WithTextSampleCap(cfg.TextSampleCap))
	}
	builder := analysis.NewBuilder(builderOpts...)

	analysisSvc := service.NewAnalysisService(
		campaignRepo, questionRepo, submissionRepo, answerRepo,
		leadQueue, packStatus, builder,
	)

	// Inject notifier (wsHub implements service.Notifier)
	analysisSvc.SetNotifier(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		CampaignService:   campaignSvc,
		SubmissionService: submissionSvc,
		AnalysisService:   analysisSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/campaigns")
		log.Println("  GET/PUT /v1/campaigns/{id}")
		log.Println("  PUT  /v1/campaigns/{id}/form")
		log.Println("  POST /v1/campaigns/{id}/submissions")
		log.Println("  POST /v1/campaigns/{id}/analysis")
		log.Println("  GET  /v1/campaigns/{id}/analysis/status")
		log.Println("  GET  /v1/campaigns/{id}/leads")
		log.Println("  WS   /v1/ws/campaigns/{id}/host")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
