package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"blogapp/internal/apperror"
)

func (h *Handlers) AddLike(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, apperror.MsgAuthRequired, http.StatusUnauthorized)
		return
	}

	like, err := h.LikeService.AddLike(r.Context(), principal.ID, mux.Vars(r)["id"])
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgLikeCreateError)
		return
	}

	WriteSuccess(w, like, http.StatusCreated)
}

func (h *Handlers) RemoveLike(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, apperror.MsgAuthRequired, http.StatusUnauthorized)
		return
	}

	if err := h.LikeService.RemoveLike(r.Context(), principal.ID, mux.Vars(r)["id"]); err != nil {
		h.writeAppError(w, r, err, apperror.MsgLikeDeleteError)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "いいねを削除しました"}, http.StatusOK)
}
