package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mdtaufique8084/TMS/auth"
	"github.com/mdtaufique8084/TMS/config"
	"github.com/mdtaufique8084/TMS/handlers"
	"github.com/mdtaufique8084/TMS/middleware"
	"github.com/mdtaufique8084/TMS/storage"
)

// tokenTTL is the fixed lifetime of issued bearer tokens. Expiry is
// absolute; there is no refresh or revocation.
const tokenTTL = time.Hour

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration", slog.Any("error", err))
		os.Exit(1)
	}

	var store storage.Store
	if cfg.DatabaseURL != "" {
		pg, err := storage.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			logger.Error("database", slog.Any("error", err))
			os.Exit(1)
		}
		defer pg.Close()
		store = pg
		logger.Info("connected to PostgreSQL")
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory store; data will not survive restarts")
		store = storage.NewMemory()
	}

	signer := auth.Signer{Key: []byte(cfg.JWTSecret), TTL: tokenTTL}
	verifier := auth.GoogleVerifier{ClientID: cfg.GoogleClientID}
	h := handlers.NewHandlers(store, signer, verifier, logger)

	router := mux.NewRouter()
	router.HandleFunc("/", h.Health).Methods("GET")

	authRouter := router.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/register", h.RegisterUser).Methods("POST")
	authRouter.HandleFunc("/login", h.LoginUser).Methods("POST")
	if cfg.GoogleClientID != "" {
		authRouter.HandleFunc("/google", h.GoogleLogin).Methods("POST")
	}

	taskRouter := router.PathPrefix("/api/tasks").Subrouter()
	taskRouter.Use(middleware.Auth(signer))
	taskRouter.HandleFunc("", h.GetTasks).Methods("GET")
	taskRouter.HandleFunc("", h.CreateTask).Methods("POST")
	taskRouter.HandleFunc("/{id}", h.UpdateTask).Methods("PUT")
	taskRouter.HandleFunc("/{id}", h.DeleteTask).Methods("DELETE")

	cors := gorilla.CORS(
		gorilla.AllowedOrigins(cfg.CORSOrigins),
		gorilla.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	chain := middleware.Logging(logger)(cors(router))

	addr := ":" + cfg.Port
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, chain); err != nil {
		logger.Error("server", slog.Any("error", err))
		os.Exit(1)
	}
}
