package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/middleware"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/usecase"
)

const maxUploadSize = 10 << 20 // 10 MiB

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
	log       logger.Logger
}

func NewCatalogHandler(catalogUC *usecase.CatalogUsecase, log logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, log: log}
}

// readOptionalPhoto pulls the "photo" file out of a multipart form, if one
// was sent.
func readOptionalPhoto(r *http.Request) ([]byte, string, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return nil, "", nil
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, "", usecase.ErrValidation
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, "", nil
		}
		return nil, "", usecase.ErrValidation
	}
	defer file.Close()
	return readAll(file, header.Filename)
}

func readAll(file multipart.File, name string) ([]byte, string, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return nil, "", usecase.ErrValidation
	}
	return data, name, nil
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.CatalogFilter{
		Category:   q.Get("category"),
		SearchTerm: q.Get("search"),
	}
	if v, err := strconv.ParseInt(q.Get("priceMin"), 10, 64); err == nil {
		filter.PriceMin = v
	}
	if v, err := strconv.ParseInt(q.Get("priceMax"), 10, 64); err == nil {
		filter.PriceMax = v
	}

	entries, err := h.catalogUC.ListCatalog(r.Context(), filter)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Items []entity.CatalogEntry `json:"items"`
	}{Items: entries})
}

func (h *CatalogHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor ID not found in token", http.StatusUnauthorized)
		return
	}

	var body struct {
		ItemID string `json:"itemId"`
		Source string `json:"source"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	redemption, err := h.catalogUC.Redeem(r.Context(), actorID, body.ItemID, entity.CatalogSource(body.Source))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, redemption)
}

// SubmitGarageItem takes a multipart form: name, price, optional photo.
func (h *CatalogHandler) SubmitGarageItem(w http.ResponseWriter, r *http.Request) {
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

	price, _ := strconv.ParseInt(r.FormValue("price"), 10, 64)
	item, err := h.catalogUC.SubmitGarageItem(r.Context(), usecase.SubmitGarageItemInput{
		SellerName:  r.FormValue("sellerName"),
		SellerEmail: actorEmail,
		Name:        r.FormValue("name"),
		Price:       price,
		Photo:       photo,
		PhotoName:   photoName,
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *CatalogHandler) ListMyGarageItems(w http.ResponseWriter, r *http.Request) {
	actorEmail, ok := middleware.ActorEmailFromContext(r.Context())
	if !ok {
		http.Error(w, "Actor email not found in token", http.StatusUnauthorized)
		return
	}
	items, err := h.catalogUC.ListGarageItemsBySeller(r.Context(), actorEmail)
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) DeleteGarageItem(w http.ResponseWriter, r *http.Request) {
	actorEmail, _ := middleware.ActorEmailFromContext(r.Context())
	err := h.catalogUC.DeleteGarageItem(r.Context(), chi.URLParam(r, "id"), actorEmail, middleware.IsAdminContext(r.Context()))
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Price    int64  `json:"price"`
		Stock    int    `json:"stock"`
		ImageURL string `json:"imageUrl"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	product, err := h.catalogUC.CreateProduct(r.Context(), usecase.ProductInput{
		Name:     body.Name,
		Category: body.Category,
		Price:    body.Price,
		Stock:    body.Stock,
		ImageURL: body.ImageURL,
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func (h *CatalogHandler) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Price    int64  `json:"price"`
		Stock    int    `json:"stock"`
		ImageURL string `json:"imageUrl"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, h.log, err)
		return
	}

	product, err := h.catalogUC.UpdateProduct(r.Context(), chi.URLParam(r, "id"), usecase.ProductInput{
		Name:     body.Name,
		Category: body.Category,
		Price:    body.Price,
		Stock:    body.Stock,
		ImageURL: body.ImageURL,
	})
	if err != nil {
		respondError(w, h.log, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
