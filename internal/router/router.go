package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/handler"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/middleware"
	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/platform/logger"
)

type Handlers struct {
	Profile    *handler.ProfileHandler
	Request    *handler.RequestHandler
	Moderation *handler.ModerationHandler
	Catalog    *handler.CatalogHandler
	Pet        *handler.PetHandler
	Mural      *handler.MuralHandler
}

// New builds the full route tree: a public surface, an authenticated surface
// and an admin surface gated by role.
func New(h Handlers, parser middleware.TokenParser, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Public routes.
	r.Group(func(pub chi.Router) {
		pub.Use(middleware.OptionalJWT(parser))

		pub.Post("/api/register", h.Profile.Register)
		pub.Post("/api/login", h.Profile.Login)
		pub.Get("/api/partners", h.Profile.ListPartners)
		pub.Get("/api/catalog", h.Catalog.List)
		pub.Get("/api/pets", h.Pet.Browse)
		pub.Get("/api/pets/{id}", h.Pet.GetByID)
		pub.Get("/api/mural", h.Mural.ListPosts)
		pub.Get("/api/mural/{id}/comments", h.Mural.ListComments)
	})

	// Authenticated routes.
	r.Group(func(auth chi.Router) {
		auth.Use(middleware.JWTAuth(parser))

		auth.Post("/api/logout", h.Profile.Logout)
		auth.Get("/api/profile", h.Profile.GetProfile)
		auth.Get("/api/profile/balance", h.Profile.GetBalance)

		auth.Post("/api/requests", h.Request.Submit)
		auth.Get("/api/requests/mine", h.Request.ListMine)

		auth.Post("/api/catalog/redeem", h.Catalog.Redeem)
		auth.Post("/api/garage", h.Catalog.SubmitGarageItem)
		auth.Get("/api/garage/mine", h.Catalog.ListMyGarageItems)
		auth.Delete("/api/garage/{id}", h.Catalog.DeleteGarageItem)

		auth.Post("/api/pets", h.Pet.Create)
		auth.Get("/api/pets/mine/list", h.Pet.ListMine)
		auth.Post("/api/pets/{id}/photos", h.Pet.UploadPhoto)
		auth.Delete("/api/pets/{id}", h.Pet.Delete)

		auth.Post("/api/mural", h.Mural.CreatePost)
		auth.Post("/api/mural/{id}/comments", h.Mural.AddComment)
		auth.Post("/api/mural/{id}/like", h.Mural.Like)
		auth.Delete("/api/mural/{id}/like", h.Mural.Unlike)
		auth.Delete("/api/mural/{id}", h.Mural.DeletePost)
	})

	// Admin routes. JWTAuth establishes identity, AdminOnly gates by role.
	r.Group(func(admin chi.Router) {
		admin.Use(middleware.JWTAuth(parser))
		admin.Use(middleware.AdminOnly)

		admin.Get("/api/admin/requests", h.Request.AdminList)
		admin.Post("/api/admin/requests/{id}/transition", h.Request.AdminTransition)
		admin.Delete("/api/admin/requests/{id}", h.Request.AdminDelete)

		admin.Post("/api/admin/requests/{id}/garage-decision", h.Moderation.ResolveGarage)
		admin.Post("/api/admin/actors/{id}/decision", h.Moderation.ResolveActor)
		admin.Post("/api/admin/pets/{id}/decision", h.Moderation.ResolvePet)

		admin.Get("/api/admin/actors", h.Profile.AdminListActors)
		admin.Delete("/api/admin/actors/{id}", h.Profile.AdminDeleteActor)

		admin.Post("/api/admin/products", h.Catalog.AdminCreateProduct)
		admin.Put("/api/admin/products/{id}", h.Catalog.AdminUpdateProduct)
		admin.Delete("/api/admin/products/{id}", h.Catalog.AdminDeleteProduct)
	})

	return r
}
