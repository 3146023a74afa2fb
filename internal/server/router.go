// Package server wires handlers and middleware into the HTTP router.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"mindfullearner/internal/handlers"
	"mindfullearner/internal/metrics"
	mw "mindfullearner/internal/middleware"
	"mindfullearner/internal/respond"
	"mindfullearner/internal/services"
	"mindfullearner/internal/store"
)

type Options struct {
	JWTSecret         []byte
	TokenTTL          time.Duration
	AllowUserIDHeader bool
	CORSOrigins       []string
	MetricsEnabled    bool
}

// NewRouter builds the API. Every route under /api except signup and signin
// requires a resolved user.
func NewRouter(s *store.Store, encSvc *services.EncryptionService, opts Options, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.TraceID)
	r.Use(mw.ZapRequestLogger(logger))
	if opts.MetricsEnabled {
		r.Use(mw.Metrics)
	}
	r.Use(chimw.Recoverer)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", mw.UserIDHeader, mw.TraceIDHeader},
		ExposedHeaders:   []string{mw.TraceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			respond.Error(w, logger, err)
			return
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	authHandler := handlers.NewAuthHandler(s, opts.JWTSecret, opts.TokenTTL, logger)
	userHandler := handlers.NewUserHandler(s, logger)
	journalHandler := handlers.NewJournalHandler(s, encSvc, logger)
	healthHandler := handlers.NewHealthHandler(s, logger)
	educationHandler := handlers.NewEducationHandler(s, logger)
	hobbyHandler := handlers.NewHobbyHandler(s, logger)
	chatHandler := handlers.NewChatHandler(s, logger)
	taskHandler := handlers.NewTaskHandler(s, logger)
	quizHandler := handlers.NewQuizHandler(s, logger)
	dashboardHandler := handlers.NewDashboardHandler(s, logger)
	authMW := mw.NewAuthMiddleware(opts.JWTSecret, s, opts.AllowUserIDHeader, logger)

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/signup", authHandler.Signup)
		api.Post("/auth/signin", authHandler.Signin)

		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireUser)

			pr.Get("/users/me", userHandler.GetMe)
			pr.Patch("/users/me", userHandler.UpdateMe)

			pr.Post("/gratitude", journalHandler.CreateGratitude)
			pr.Get("/gratitude", journalHandler.ListGratitude)
			pr.Post("/mood", journalHandler.CreateMood)
			pr.Get("/mood", journalHandler.ListMood)

			pr.Route("/health", func(h chi.Router) {
				h.Post("/sleep", healthHandler.LogSleep)
				h.Get("/sleep/{date}", healthHandler.GetSleep)
				h.Post("/water", healthHandler.LogWater)
				h.Get("/water/{date}", healthHandler.GetWater)
				h.Post("/hygiene", healthHandler.LogHygiene)
				h.Get("/hygiene/{date}", healthHandler.GetHygiene)
				h.Post("/meditation", healthHandler.LogMeditation)
				h.Get("/meditation/{date}", healthHandler.GetMeditation)
			})

			pr.Route("/education", func(e chi.Router) {
				e.Get("/preferences", educationHandler.GetPreferences)
				e.Post("/preferences", educationHandler.SavePreferences)
				e.Get("/roadmaps/trending", educationHandler.Trending)
				e.Get("/roadmaps/recommended", educationHandler.Recommended)
			})

			pr.Get("/hobbies", hobbyHandler.List)
			pr.Get("/hobbies/preferences", hobbyHandler.GetPreferences)
			pr.Post("/hobbies/preferences", hobbyHandler.SavePreferences)
			pr.Post("/hobbies/recommended", hobbyHandler.Recommended)

			pr.Get("/chat/rooms", chatHandler.Rooms)
			pr.Get("/chat/rooms/{id}/messages", chatHandler.Messages)
			pr.Post("/chat/rooms/{id}/messages", chatHandler.PostMessage)

			pr.Post("/tasks", taskHandler.Create)
			pr.Get("/tasks", taskHandler.List)

			pr.Get("/quiz/financial", quizHandler.Financial)
			pr.Post("/quiz/financial/attempts", quizHandler.SubmitFinancial)

			pr.Get("/dashboard", dashboardHandler.Get)
			pr.Get("/dashboard/leaderboard", dashboardHandler.Leaderboard)
		})
	})

	return r
}
