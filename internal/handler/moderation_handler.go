package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/usecase"
)

// ModerationHandler groups the admin decision endpoints: garage approvals,
// account registrations and pet listings.
type ModerationHandler struct {
	moderationUC *usecase.ModerationUsecase
	log          logger.Logger
}

func NewModerationHandler(moderationUC *usecase.ModerationUsecase, log logger.Logger) *ModerationHandler {
	return &ModerationHandler{moderationUC: moderationUC, log: log}
}

type decisionBody struct {
	Approve bool `json:"approve"`
}

// ResolveGarage decides a garage approval request and its item in one call.
func (h *ModerationHandler) ResolveGarage(w http.ResponseWriter, r *http.Request) {
	var body decisionBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	if err := h.moderationUC.ResolveGarageApproval(r.Context(), chi.URLParam(r, "id"), body.Approve); err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "garage approval resolved"})
}

func (h *ModerationHandler) ResolveActor(w http.ResponseWriter, r *http.Request) {
	var body decisionBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	actor, err := h.moderationUC.ResolveActorRegistration(r.Context(), chi.URLParam(r, "id"), body.Approve)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, toActorResponse(actor))
}

func (h *ModerationHandler) ResolvePet(w http.ResponseWriter, r *http.Request) {
	var body decisionBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	pet, err := h.moderationUC.ResolvePetListing(r.Context(), chi.URLParam(r, "id"), body.Approve)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, pet)
}
