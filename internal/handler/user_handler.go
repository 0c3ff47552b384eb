package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"blogapp/internal/apperror"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, apperror.MsgAuthRequired, http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetCurrentUser(r.Context(), principal.ID)
	if err != nil {
		// the token outlived its user
		if apperror.Is(err, apperror.KindNotFound) {
			WriteError(w, apperror.MsgAuthRequired, http.StatusUnauthorized)
			return
		}
		h.writeAppError(w, r, err, apperror.MsgInternal)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := h.UserService.GetUserSummary(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgInternal)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}

func (h *Handlers) GetMyStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, apperror.MsgAuthRequired, http.StatusUnauthorized)
		return
	}

	stats, err := h.UserService.GetStats(r.Context(), principal.ID)
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgInternal)
		return
	}

	WriteSuccess(w, stats, http.StatusOK)
}
