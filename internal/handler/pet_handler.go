package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/middleware"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/usecase"
)

type PetHandler struct {
	petUC *usecase.PetUsecase
	log   logger.Logger
}

func NewPetHandler(petUC *usecase.PetUsecase, log logger.Logger) *PetHandler {
	return &PetHandler{petUC: petUC, log: log}
}

func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorEmail, ok := middleware.ActorEmailFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor email not found in token", http.StatusUnauthorized)
		return
	}

	var body struct {
		Name        string `json:"name"`
		Species     string `json:"species"`
		Breed       string `json:"breed"`
		Age         string `json:"age"`
		Story       string `json:"story"`
		HealthNotes string `json:"healthNotes"`
		Mode        string `json:"mode"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	pet, err := h.petUC.Create(r.Context(), usecase.CreatePetInput{
		OwnerEmail:  actorEmail,
		Name:        body.Name,
		Species:     body.Species,
		Breed:       body.Breed,
		Age:         body.Age,
		Story:       body.Story,
		HealthNotes: body.HealthNotes,
		Mode:        entity.PetMode(body.Mode),
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, pet)
}

// Browse is the public listing surface; it only ever shows approved pets.
func (h *PetHandler) Browse(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	pets, total, err := h.petUC.Browse(r.Context(), usecase.BrowsePetsInput{
		Mode:     entity.PetMode(r.URL.Query().Get("mode")),
		Species:  r.URL.Query().Get("species"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Pets  []*entity.PetListing `json:"pets"`
		Total int64                `json:"total"`
	}{Pets: pets, Total: total})
}

func (h *PetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	pet, err := h.petUC.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, pet)
}

func (h *PetHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actorEmail, ok := middleware.ActorEmailFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor email not found in token", http.StatusUnauthorized)
		return
	}
	pets, err := h.petUC.ListMine(r.Context(), actorEmail)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, pets)
}

// UploadPhoto takes a multipart form with a "photo" file.
func (h *PetHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	actorEmail, _ := middleware.ActorEmailFromContext(r.Context())

	photo, photoName, err := readOptionalPhoto(r)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	url, err := h.petUC.UploadPhoto(r.Context(), chi.URLParam(r, "id"), actorEmail,
		middleware.IsAdminContext(r.Context()), photoName, photo)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, struct {
		URL string `json:"url"`
	}{URL: url})
}

func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorEmail, _ := middleware.ActorEmailFromContext(r.Context())
	err := h.petUC.Delete(r.Context(), chi.URLParam(r, "id"), actorEmail, middleware.IsAdminContext(r.Context()))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
