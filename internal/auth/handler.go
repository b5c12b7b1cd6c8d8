// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/middleware"
)

// Sessions binds and unbinds a browser to a logged-in user.
type Sessions interface {
	Start(w http.ResponseWriter, r *http.Request, userID int64) error
	End(w http.ResponseWriter, r *http.Request) error
}

type Handler struct {
	service   *Service
	sessions  Sessions
	validator *validator.Validate
}

func NewHandler(service *Service, sessions Sessions) *Handler {
	return &Handler{
		service:   service,
		sessions:  sessions,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.With(middleware.RequireSession).Get("/user", h.CurrentUser)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, "Invalid registration data", err)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			core.BadRequest(w, "Username or email already exists")
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	if err := h.sessions.Start(w, r, user.ID); err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	core.Created(w, ToUserResponse(user))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, "Invalid login data", err)
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.Unauthorized(w, "Invalid username or password")
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	if err := h.sessions.Start(w, r, user.ID); err != nil {
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.End(w, r); err != nil {
		slog.WarnContext(r.Context(), "session destroy failed", "error", err)
	}

	core.Message(w, http.StatusOK, "Logged out")
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Current(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) || errors.Is(err, core.ErrUnauthorized) {
			core.Unauthorized(w, "")
			return
		}
		core.InternalServerError(w, r, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}
