package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/middleware"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/usecase"
)

type MuralHandler struct {
	muralUC *usecase.MuralUsecase
	log     logger.Logger
}

func NewMuralHandler(muralUC *usecase.MuralUsecase, log logger.Logger) *MuralHandler {
	return &MuralHandler{muralUC: muralUC, log: log}
}

// CreatePost takes a multipart form: text, optional photo.
func (h *MuralHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	actorEmail, ok := middleware.ActorEmailFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor email not found in token", http.StatusUnauthorized)
		return
	}

	photo, photoName, err := readOptionalPhoto(r)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	post, err := h.muralUC.CreatePost(r.Context(), usecase.CreatePostInput{
		AuthorName:  r.FormValue("authorName"),
		AuthorEmail: actorEmail,
		Text:        r.FormValue("text"),
		Photo:       photo,
		PhotoName:   photoName,
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, post)
}

// ListPosts is public; when the caller is authenticated the per-viewer like
// flag is filled in.
func (h *MuralHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	viewerEmail, _ := middleware.ActorEmailFromContext(r.Context())
	page, pageSize := pagination(r)

	views, total, err := h.muralUC.ListPosts(r.Context(), viewerEmail, page, pageSize)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Posts []*usecase.MuralPostView `json:"posts"`
		Total int64                    `json:"total"`
	}{Posts: views, Total: total})
}

func (h *MuralHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	actorEmail, ok := middleware.ActorEmailFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor email not found in token", http.StatusUnauthorized)
		return
	}

	var body struct {
		AuthorName string `json:"authorName"`
		Text       string `json:"text"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	comment, err := h.muralUC.AddComment(r.Context(), chi.URLParam(r, "id"), body.AuthorName, actorEmail, body.Text)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, comment)
}

func (h *MuralHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.muralUC.ListComments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

type likeResponse struct {
	Likes int64 `json:"likes"`
}

func (h *MuralHandler) Like(w http.ResponseWriter, r *http.Request) {
	actorEmail, ok := middleware.ActorEmailFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor email not found in token", http.StatusUnauthorized)
		return
	}
	count, err := h.muralUC.Like(r.Context(), chi.URLParam(r, "id"), actorEmail)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, likeResponse{Likes: count})
}

func (h *MuralHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	actorEmail, ok := middleware.ActorEmailFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor email not found in token", http.StatusUnauthorized)
		return
	}
	count, err := h.muralUC.Unlike(r.Context(), chi.URLParam(r, "id"), actorEmail)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, likeResponse{Likes: count})
}

func (h *MuralHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	actorEmail, _ := middleware.ActorEmailFromContext(r.Context())
	err := h.muralUC.DeletePost(r.Context(), chi.URLParam(r, "id"), actorEmail, middleware.IsAdminContext(r.Context()))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
