package router

import (
	"net/http"

	"adoptme-backend/internal/handlers"
	"adoptme-backend/internal/middleware"
	"adoptme-backend/internal/repository"
	"adoptme-backend/internal/services"
	"adoptme-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Options configures the router. Tests mount the full HTTP surface over the
// in-memory store by passing it here.
type Options struct {
	Store     repository.Store
	Images    storage.ImageStore
	JWTSecret string

	// UploadsDir, when set, is served under /uploads (local storage driver).
	UploadsDir string
}

// New builds the application router with all routes and middleware wired
func New(opts Options) http.Handler {
	userService := services.NewUserService(opts.Store, opts.JWTSecret)
	petService := services.NewPetService(opts.Store, opts.Images)
	adoptionService := services.NewAdoptionService(opts.Store)
	mockService := services.NewMockService(userService, petService)

	userHandler := handlers.NewUserHandler(userService)
	petHandler := handlers.NewPetHandler(petService)
	adoptionHandler := handlers.NewAdoptionHandler(adoptionService)
	sessionHandler := handlers.NewSessionHandler(userService)
	mockHandler := handlers.NewMockHandler(mockService)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/pets", func(r chi.Router) {
			r.Post("/", petHandler.CreatePet)
			r.Post("/withimage", petHandler.CreatePetWithImage)
			r.Get("/", petHandler.ListPets)
			r.Get("/{pid}", petHandler.GetPet)
			r.Put("/{pid}", petHandler.UpdatePet)
			r.Delete("/{pid}", petHandler.DeletePet)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Get("/{uid}", userHandler.GetUser)
			r.Put("/{uid}", userHandler.UpdateUser)
			r.Delete("/{uid}", userHandler.DeleteUser)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/register", sessionHandler.Register)
			r.Post("/login", sessionHandler.Login)
			r.Post("/logout", sessionHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(userService))
				r.Get("/current", sessionHandler.Current)
			})
		})

		r.Route("/adoptions", func(r chi.Router) {
			r.Get("/", adoptionHandler.ListAdoptions)
			r.Get("/{aid}", adoptionHandler.GetAdoption)
			r.Post("/{uid}/{pid}", adoptionHandler.Adopt)
		})

		r.Route("/mocks", func(r chi.Router) {
			r.Get("/mockingpets", mockHandler.MockPets)
			r.Get("/mockingusers", mockHandler.MockUsers)
			r.Post("/generatedata", mockHandler.GenerateData)
		})
	})

	if opts.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadsDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	return r
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
