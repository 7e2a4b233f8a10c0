// This is the main entry point of the V-Nexus application.
// It's responsible for loading configuration, opening the persistent
// key-value store, seeding the sample collections, wiring services and
// handlers together, setting up the HTTP router and middleware, and starting
// the HTTP server. It also handles graceful shutdown of the server and the
// background reply worker.
// @title V-Nexus API
// @version 1.0
// @description API for V-Nexus, a social application: feed, friends, notifications, messaging, and profiles.
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json" // for local writeError
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/alpha0014/V-Nexus/docs" // Generated Swagger docs

	// `chi` is a lightweight, idiomatic and composable router for building
	// HTTP services in Go.
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	// `godotenv` loads environment variables from a .env file, useful for
	// development.
	"github.com/joho/godotenv"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/auth"
	"github.com/alpha0014/V-Nexus/config"
	"github.com/alpha0014/V-Nexus/friends"
	"github.com/alpha0014/V-Nexus/messaging"
	"github.com/alpha0014/V-Nexus/notifications"
	"github.com/alpha0014/V-Nexus/posts"
	"github.com/alpha0014/V-Nexus/settings"
	"github.com/alpha0014/V-Nexus/storage"
	"github.com/alpha0014/V-Nexus/users"
)

func main() {
	// In production, variables are usually set directly; the .env file is a
	// development convenience.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open the embedded key-value store and bring its schema up to date.
	store, err := storage.Open(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	// Start the background reply worker for the messaging simulation.
	// `replyStopChan` signals it to drain and stop during shutdown.
	replyStopChan := make(chan struct{})
	replyWorker := messaging.NewReplyWorker(store, *cfg.Messaging)
	replyWorker.Start(replyStopChan)

	// Services encapsulate the business logic; dependencies are injected
	// manually here. The notification service doubles as the feed's Notifier
	// so likes and comments surface as notifications.
	broadcaster := notifications.NewBroadcaster()
	notificationService := notifications.NewNotificationService(store, broadcaster)

	authService := auth.NewAuthService(store, *cfg.Auth)
	postService := posts.NewPostService(store, notificationService)
	userService := users.NewUserService(store)
	friendService := friends.NewFriendService(store)
	messagingService := messaging.NewMessagingService(store, replyWorker)
	settingsService := settings.NewSettingsService(store)

	// Seed the sample collections on first run. Keys already present in the
	// store are left alone.
	if err := friendService.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed friends: %v", err)
	}
	if err := notificationService.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed notifications: %v", err)
	}
	if err := messagingService.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed conversations: %v", err)
	}

	authHandlers := auth.NewHandlers(authService)
	postHandlers := posts.NewPostHandler(postService)
	userHandlers := users.NewUserHandlers(userService)
	friendHandlers := friends.NewFriendHandlers(friendService)
	notificationHandlers := notifications.NewNotificationHandlers(notificationService, broadcaster)
	messagingHandlers := messaging.NewMessagingHandlers(messagingService)
	settingsHandlers := settings.NewSettingsHandlers(settingsService)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		// Any origin is fine for a demo deployment; restrict in production.
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that formats the 500 through the apperror system, so
	// panics and service errors share one response shape.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Swagger UI, backed by the documentation generated by `swaggo/swag`.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Auth routes. Register, login, and refresh are public; logout and the
	// session lookup require a valid access token.
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
		r.Post("/refresh", authHandlers.HandleRefreshToken())

		r.Group(func(r chi.Router) {
			r.Use(auth.JWTMiddleware(cfg.Auth))
			r.Post("/logout", authHandlers.HandleLogout())
			r.Get("/session", authHandlers.HandleSession())
		})
	})

	// Profile routes.
	r.Route("/api/v1/users", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(cfg.Auth))
		userHandlers.RegisterRoutes(r)
	})

	// Feed routes.
	r.Route("/api/v1/posts", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(cfg.Auth))
		postHandlers.RegisterRoutes(r)
	})

	// Friends routes.
	r.Route("/api/v1/friends", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(cfg.Auth))
		friendHandlers.RegisterRoutes(r)
	})

	// Notification routes, including the SSE stream.
	r.Route("/api/v1/notifications", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(cfg.Auth))
		notificationHandlers.RegisterRoutes(r)
	})

	// Messaging routes.
	r.Route("/api/v1/messages", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(cfg.Auth))
		messagingHandlers.RegisterRoutes(r)
	})

	// Settings routes.
	r.Route("/api/v1/settings", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(cfg.Auth))
		settingsHandlers.RegisterRoutes(r)
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		// No WriteTimeout: the SSE stream holds its response open
		// indefinitely, and a server-wide write deadline would sever it.
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Start the server in a goroutine so the main goroutine can wait for
	// shutdown signals.
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Signal the reply worker to drain its queue; it finishes in-flight
	// replies before its pool exits.
	log.Println("Signaling reply worker to stop...")
	close(replyStopChan)

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware, formatting
// panics through the apperror response shape.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"Failed to encode error response"}`, http.StatusInternalServerError)
	}
}
