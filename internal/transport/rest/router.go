package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"campaignlens/internal/service"
	"campaignlens/internal/transport/rest/handler"
	"campaignlens/internal/transport/rest/middleware"
	"campaignlens/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	CampaignService   *service.CampaignService
	SubmissionService *service.SubmissionService
	AnalysisService   *service.AnalysisService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	campaignHandler := handler.NewCampaignHandler(c.CampaignService, c.SubmissionService)
	submissionHandler := handler.NewSubmissionHandler(c.SubmissionService)
	analysisHandler := handler.NewAnalysisHandler(c.AnalysisService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/campaigns/{id}/submissions", submissionHandler.Intake).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/campaigns/{id}/host", wsHandler.HostWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Host routes (require host auth)
	hostRoutes := v1.NewRoute().Subrouter()
	hostRoutes.Use(authMW.RequireHost)

	hostRoutes.HandleFunc("/campaigns", campaignHandler.Create).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/campaigns", campaignHandler.List).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/campaigns/{id}", campaignHandler.Get).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/campaigns/{id}", campaignHandler.Update).Methods("PUT", "OPTIONS")
	hostRoutes.HandleFunc("/campaigns/{id}/form", campaignHandler.SetForm).Methods("PUT", "OPTIONS")
	hostRoutes.HandleFunc("/campaigns/{id}/analysis", analysisHandler.Build).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("/campaigns/{id}/analysis/status", analysisHandler.Status).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/campaigns/{id}/leads", analysisHandler.Leads).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/campaigns/{id}/leads/{submissionId}", analysisHandler.LeadRank).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
