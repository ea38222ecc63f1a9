package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires the full route table. Project and Skill mutations plus
// /auth/me sit behind the bearer gate; professional and user CRUD do not.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)

		r.Get("/", indexHandler())
		r.Get("/api-docs", apiDocsHandler())

		// Professional endpoints (unprotected, list auto-seeds)
		r.Get("/professional", handlers.professionalHandler.getAllProfessionals())
		r.Get("/professional/{professionalID}", handlers.professionalHandler.getProfessional())
		r.Post("/professional", handlers.professionalHandler.createProfessional())
		r.Put("/professional/{professionalID}", handlers.professionalHandler.updateProfessional())
		r.Delete("/professional/{professionalID}", handlers.professionalHandler.deleteProfessional())

		// Project reads
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		// Skill reads
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Get("/skills/{skillID}", handlers.skillHandler.getSkill())

		// User CRUD (no auth gate, mirroring the reference surface)
		r.Get("/users", handlers.userHandler.getAllUsers())
		r.Get("/users/{userID}", handlers.userHandler.getUser())
		r.Post("/users", handlers.userHandler.createUser())
		r.Put("/users/{userID}", handlers.userHandler.updateUser())
		r.Delete("/users/{userID}", handlers.userHandler.deleteUser())

		// Identity issuance
		r.Post("/auth/register", handlers.authHandler.register())
		r.Post("/auth/login", handlers.authHandler.login())

		// Bearer-gated mutations
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())

			r.Get("/auth/me", handlers.authHandler.me())
		})
	})
}

// indexHandler reports that the API is up and where to look next.
func indexHandler() http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "indexHandler").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Professional Portfolio API is running!",
			"endpoints": map[string]string{
				"professional": "/professional",
				"projects":     "/projects",
				"skills":       "/skills",
				"users":        "/users",
				"apiDocs":      "/api-docs",
			},
		})
	}
}

// apiDocsHandler lists the route surface grouped by resource.
func apiDocsHandler() http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "apiDocsHandler").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "API Documentation",
			"endpoints": map[string]map[string]string{
				"professional": {
					"GET /professional":        "List professionals (seeds a sample when empty)",
					"GET /professional/:id":    "Get professional by ID",
					"POST /professional":       "Create professional",
					"PUT /professional/:id":    "Update professional",
					"DELETE /professional/:id": "Delete professional",
				},
				"projects": {
					"GET /projects":        "List projects",
					"GET /projects/:id":    "Get project by ID",
					"POST /projects":       "Create project (bearer)",
					"PUT /projects/:id":    "Update project (bearer)",
					"DELETE /projects/:id": "Delete project (bearer)",
				},
				"skills": {
					"GET /skills":        "List skills",
					"GET /skills/:id":    "Get skill by ID",
					"POST /skills":       "Create skill (bearer)",
					"PUT /skills/:id":    "Update skill (bearer)",
					"DELETE /skills/:id": "Delete skill (bearer)",
				},
				"users": {
					"GET /users":        "List users",
					"GET /users/:id":    "Get user by ID",
					"POST /users":       "Create user",
					"PUT /users/:id":    "Update user",
					"DELETE /users/:id": "Delete user",
				},
				"auth": {
					"POST /auth/register": "Register new user",
					"POST /auth/login":    "User login",
					"GET /auth/me":        "Current user (bearer)",
				},
			},
		})
	}
}
