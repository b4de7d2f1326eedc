package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/middleware"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/usecase"
)

type RequestHandler struct {
	requestUC *usecase.RequestUsecase
	log       logger.Logger
}

func NewRequestHandler(requestUC *usecase.RequestUsecase, log logger.Logger) *RequestHandler {
	return &RequestHandler{requestUC: requestUC, log: log}
}

func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Kind         string `json:"kind"`
		SubjectRef   string `json:"subjectRef"`
		SubjectName  string `json:"subjectName"`
		SubjectImage string `json:"subjectImage"`
		Message      string `json:"message"`
		VisitDate    string `json:"visitDate"`
		VisitTime    string `json:"visitTime"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	actorEmail, _ := middleware.ActorEmailFromContext(r.Context())
	req, err := h.requestUC.Submit(r.Context(), usecase.SubmitRequestInput{
		Kind:         entity.RequestKind(body.Kind),
		SubjectRef:   body.SubjectRef,
		SubjectName:  body.SubjectName,
		SubjectImage: body.SubjectImage,
		ActorEmail:   actorEmail,
		Message:      body.Message,
		VisitDate:    body.VisitDate,
		VisitTime:    body.VisitTime,
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

// ListMine returns the authenticated actor's own submissions.
func (h *RequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actorEmail, ok := middleware.ActorEmailFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor email not found in token", http.StatusUnauthorized)
		return
	}
	requests, err := h.requestUC.ListByActor(r.Context(), actorEmail)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	requests, total, err := h.requestUC.ListAll(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Requests []*entity.Request `json:"requests"`
		Total    int64             `json:"total"`
	}{Requests: requests, Total: total})
}

func (h *RequestHandler) AdminTransition(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	req, err := h.requestUC.Transition(r.Context(), chi.URLParam(r, "id"), entity.RequestStatus(body.Status))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.requestUC.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
