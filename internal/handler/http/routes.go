package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// CORS runs before auth so preflight requests are answered without a key.
	if h.cors {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		}))
	}

	router.Use(h.auth)

	router.Get("/status", h.status)
	router.Get("/getAll", h.getAll)

	router.Post("/addNote", h.addNote)
	router.Post("/addTask", h.addTask)
	router.Delete("/deleteNote/{id}", h.deleteNote)
	router.Delete("/deleteTask/{id}", h.deleteTask)

	router.Post("/addCategory", h.addCategory)
	router.Delete("/deleteCategory/{name}", h.deleteCategory)
	router.Put("/updateCategory/{oldName}", h.renameCategory)

	router.Delete("/deleteAll", h.deleteAll)

	return router
}
