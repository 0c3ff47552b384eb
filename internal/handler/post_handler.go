package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogapp/internal/apperror"
	"blogapp/internal/models"
	"blogapp/internal/service"
)

type PostRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=5000"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// pagination parameters, invalid values fall back to defaults
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	params := models.PostListParams{
		Page:     page,
		Limit:    limit,
		Search:   query.Get("search"),
		AuthorID: query.Get("authorId"),
	}

	result, err := h.PostService.ListPosts(r.Context(), params)
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgPostsFetchError)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgPostsFetchError)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, apperror.MsgAuthRequired, http.StatusUnauthorized)
		return
	}

	req, err := h.decodePostRequest(r)
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgPostCreateError)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), principal.ID, service.PostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgPostCreateError)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

// UpdatePost checks ownership before the body so that a non-owner gets 403
// even for an invalid payload.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, apperror.MsgAuthRequired, http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	if err := h.PostService.AuthorizeOwner(r.Context(), principal.ID, postID, apperror.MsgEditForbidden); err != nil {
		h.writeAppError(w, r, err, apperror.MsgPostUpdateError)
		return
	}

	req, err := h.decodePostRequest(r)
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgPostUpdateError)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), principal.ID, postID, service.PostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeAppError(w, r, err, apperror.MsgPostUpdateError)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, apperror.MsgAuthRequired, http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), principal.ID, postID); err != nil {
		h.writeAppError(w, r, err, apperror.MsgPostDeleteError)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "記事を削除しました"}, http.StatusOK)
}

func (h *Handlers) decodePostRequest(r *http.Request) (*PostRequest, error) {
	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, apperror.Validation(apperror.MsgInvalidRequest)
	}

	if err := h.validateRequest(req); err != nil {
		return nil, err
	}

	return &req, nil
}
