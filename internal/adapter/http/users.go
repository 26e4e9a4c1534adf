package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"agency-hub/internal/core/domain"
	"agency-hub/internal/core/port"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// handleRegister creates a user. A taken username results in HTTP 409.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in domain.NewUser
	if !h.decode(w, r, &in) {
		return
	}
	user, err := h.users.Register(r.Context(), in)
	if errors.Is(err, port.ErrUsernameTaken) {
		h.writeError(w, http.StatusConflict, "Username already taken")
		return
	}
	if err != nil {
		h.internalError(w, "register user", err, "Failed to create user")
		return
	}
	h.logger.Info("user registered", slog.String("user_id", user.ID))
	h.writeJSON(w, http.StatusCreated, user)
}

// handleLogin checks credentials and returns the user. Bad credentials
// result in HTTP 401 without saying which part was wrong.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if !h.decode(w, r, &in) {
		return
	}
	user, err := h.users.Authenticate(r.Context(), in.Username, in.Password)
	if errors.Is(err, port.ErrInvalidCredentials) {
		h.writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		h.internalError(w, "login", err, "Failed to sign in")
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}
