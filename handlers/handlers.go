// Package handlers implements the HTTP API: registration, login, and
// per-user task CRUD.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mdtaufique8084/TMS/auth"
	"github.com/mdtaufique8084/TMS/middleware"
	"github.com/mdtaufique8084/TMS/models"
	"github.com/mdtaufique8084/TMS/storage"
)

// Handlers holds the shared collaborators of all HTTP handlers.
type Handlers struct {
	store  storage.Store
	signer auth.Signer
	google auth.GoogleVerifier
	logger *slog.Logger
}

// NewHandlers is a constructor for the Handlers struct.
func NewHandlers(store storage.Store, signer auth.Signer, google auth.GoogleVerifier, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{store: store, signer: signer, google: google, logger: logger}
}

// respondWithJSON formats and sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithMessage(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"message": message})
}

// serverError hides internals from the client and logs the cause.
func (h *Handlers) serverError(w http.ResponseWriter, err error) {
	h.logger.Error("internal error", slog.Any("error", err))
	respondWithMessage(w, http.StatusInternalServerError, "Server error")
}

// Health confirms the API is up.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Task Manager API running"})
}

// RegisterUser handles a new user registration.
func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.Username == "" || req.Password == "" {
		respondWithMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	// Friendly pre-check; the store's unique constraint is the real
	// arbiter of concurrent registrations.
	_, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err == nil {
		respondWithMessage(w, http.StatusBadRequest, "User already exists")
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		h.serverError(w, err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		h.serverError(w, err)
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Username, hashed)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			respondWithMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		h.serverError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// LoginUser verifies credentials and returns a signed token.
func (h *Handlers) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.Username == "" || req.Password == "" {
		respondWithMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondWithMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.serverError(w, err)
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respondWithMessage(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := h.signer.Issue(user.ID)
	if err != nil {
		h.serverError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GoogleLogin verifies a Google ID token and signs the user in,
// provisioning an account keyed by the verified email on first use.
func (h *Handlers) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.IDToken == "" {
		respondWithMessage(w, http.StatusBadRequest, "ID token is required")
		return
	}

	email, err := h.google.VerifyIDToken(r.Context(), req.IDToken)
	if err != nil {
		respondWithMessage(w, http.StatusUnauthorized, "Invalid Google token")
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), email)
	if errors.Is(err, storage.ErrNotFound) {
		// First Google sign-in: provision the account with a random
		// password so it can never be logged into by password guessing.
		hashed, hashErr := auth.HashPassword(uuid.NewString())
		if hashErr != nil {
			h.serverError(w, hashErr)
			return
		}
		user, err = h.store.CreateUser(r.Context(), email, hashed)
		if errors.Is(err, storage.ErrUserExists) {
			// Lost a provisioning race; the account exists now.
			user, err = h.store.GetUserByUsername(r.Context(), email)
		}
	}
	if err != nil {
		h.serverError(w, err)
		return
	}

	token, err := h.signer.Issue(user.ID)
	if err != nil {
		h.serverError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GetTasks lists the authenticated user's tasks, newest first.
func (h *Handlers) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tasks, err := h.store.ListTasksByUser(r.Context(), userID)
	if err != nil {
		h.serverError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, tasks)
}

// CreateTask creates a task owned by the authenticated user. Any
// client-supplied owner field is ignored.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Title) == "" {
		respondWithMessage(w, http.StatusBadRequest, "Title is required")
		return
	}
	if req.Status == "" {
		req.Status = models.StatusPending
	}
	if !models.ValidStatus(req.Status) {
		respondWithMessage(w, http.StatusBadRequest, "Invalid status")
		return
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		UserID:      userID,
	}
	if err := h.store.CreateTask(r.Context(), &task); err != nil {
		h.serverError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, task)
}

// UpdateTask applies a partial update to a task owned by the caller.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	task, ok := h.ownedTask(w, r)
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			respondWithMessage(w, http.StatusBadRequest, "Title is required")
			return
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			respondWithMessage(w, http.StatusBadRequest, "Invalid status")
			return
		}
		task.Status = *req.Status
	}

	if err := h.store.UpdateTask(r.Context(), task); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondWithMessage(w, http.StatusNotFound, "Task not found")
			return
		}
		h.serverError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, task)
}

// DeleteTask permanently removes a task owned by the caller.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	task, ok := h.ownedTask(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteTask(r.Context(), task.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondWithMessage(w, http.StatusNotFound, "Task not found")
			return
		}
		h.serverError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

// ownedTask loads the task addressed by the route and enforces ownership.
// A missing task and someone else's task are indistinguishable to the
// caller: both answer 404. On failure the response is already written.
func (h *Handlers) ownedTask(w http.ResponseWriter, r *http.Request) (*models.Task, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithMessage(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithMessage(w, http.StatusBadRequest, "Invalid task ID")
		return nil, false
	}

	task, err := h.store.GetTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondWithMessage(w, http.StatusNotFound, "Task not found")
			return nil, false
		}
		h.serverError(w, err)
		return nil, false
	}
	if task.UserID != userID {
		respondWithMessage(w, http.StatusNotFound, "Task not found")
		return nil, false
	}

	return task, true
}
