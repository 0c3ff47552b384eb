package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"blogapp/internal/apperror"
	"blogapp/internal/models"
	"blogapp/internal/service"
)

type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  *models.Principal `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apperror.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	if err := h.validateRequest(req); err != nil {
		h.writeAppError(w, r, err, apperror.MsgRegisterError)
		return
	}

	user, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgRegisterError)
		return
	}

	WriteSuccess(w, RegisterResponse{
		Message: "ユーザー登録が完了しました",
		UserID:  user.ID,
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apperror.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	principal, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgInternal)
		return
	}

	h.setSessionCookie(w, token, time.Now().Add(h.Cfg.Session.Duration))

	WriteSuccess(w, LoginResponse{Token: token, User: principal}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.setSessionCookie(w, "", time.Unix(0, 0))

	WriteSuccess(w, MessageResponse{Message: "ログアウトしました"}, http.StatusOK)
}

// setSessionCookie deletes the cookie when token is empty.
func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	cookie := &http.Cookie{
		Name:     h.Cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.Cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(h.Cfg.Session.Duration.Seconds())
	}

	http.SetCookie(w, cookie)
}
