package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/middleware"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/port/repository"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/usecase"
)

type ProfileHandler struct {
	profileUC *usecase.ProfileUsecase
	ledgerUC  *usecase.LedgerUsecase
	log       logger.Logger
}

func NewProfileHandler(profileUC *usecase.ProfileUsecase, ledgerUC *usecase.LedgerUsecase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC, ledgerUC: ledgerUC, log: log}
}

type actorResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Role           entity.ActorRole       `json:"role"`
	Status         entity.ApprovalStatus  `json:"status"`
	Balance        int64                  `json:"balance"`
	PartnerProfile *entity.PartnerProfile `json:"partnerProfile,omitempty"`
}

func toActorResponse(a *entity.Actor) actorResponse {
	return actorResponse{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Role:           a.Role,
		Status:         a.Status,
		Balance:        a.Balance,
		PartnerProfile: a.PartnerProfile,
	}
}

func (h *ProfileHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		Role        string `json:"role"`
		CompanyName string `json:"companyName"`
		Description string `json:"description"`
		Website     string `json:"website"`
		LogoURL     string `json:"logoUrl"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	actor, err := h.profileUC.Register(r.Context(), usecase.RegisterInput{
		Name:        body.Name,
		Email:       body.Email,
		Password:    body.Password,
		Role:        entity.ActorRole(body.Role),
		CompanyName: body.CompanyName,
		Description: body.Description,
		Website:     body.Website,
		LogoURL:     body.LogoURL,
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, toActorResponse(actor))
}

func (h *ProfileHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	token, actor, err := h.profileUC.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Token string        `json:"token"`
		Actor actorResponse `json:"actor"`
	}{Token: token, Actor: toActorResponse(actor)})
}

func (h *ProfileHandler) Logout(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor ID not found in token", http.StatusUnauthorized)
		return
	}
	if err := h.profileUC.Logout(r.Context(), actorID); err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "logged out"})
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor ID not found in token", http.StatusUnauthorized)
		return
	}
	actor, err := h.profileUC.GetProfile(r.Context(), actorID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, toActorResponse(actor))
}

func (h *ProfileHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor ID not found in token", http.StatusUnauthorized)
		return
	}
	balance, err := h.ledgerUC.GetBalance(r.Context(), actorID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Balance int64 `json:"balance"`
	}{Balance: balance})
}

func (h *ProfileHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	partners, total, err := h.profileUC.ListPartners(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	responses := make([]actorResponse, 0, len(partners))
	for _, p := range partners {
		responses = append(responses, toActorResponse(p))
	}
	respondJSON(w, http.StatusOK, struct {
		Partners []actorResponse `json:"partners"`
		Total    int64           `json:"total"`
	}{Partners: responses, Total: total})
}

func (h *ProfileHandler) AdminDeleteActor(w http.ResponseWriter, r *http.Request) {
	if err := h.profileUC.DeleteActor(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminListActors lists every account, optionally filtered by role or status.
func (h *ProfileHandler) AdminListActors(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	actors, total, err := h.profileUC.ListActors(r.Context(), repository.ListActorsParams{
		Role:     entity.ActorRole(r.URL.Query().Get("role")),
		Status:   entity.ApprovalStatus(r.URL.Query().Get("status")),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	responses := make([]actorResponse, 0, len(actors))
	for _, a := range actors {
		responses = append(responses, toActorResponse(a))
	}
	respondJSON(w, http.StatusOK, struct {
		Actors []actorResponse `json:"actors"`
		Total  int64           `json:"total"`
	}{Actors: responses, Total: total})
}
