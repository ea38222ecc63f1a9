package api

import "github.com/janedoe-dev/portfolio-api/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	professionalHandler professionalHandler
	projectHandler      projectHandler
	skillHandler        skillHandler
	userHandler         userHandler
	authHandler         authHandler
}

// ProjectResponse is a project with its owning professional's display name
// resolved, mirroring the reference API's reference resolution on reads.
type ProjectResponse struct {
	models.Project
	ProfessionalName string `json:"professionalName,omitempty"`
}

// SkillResponse is a skill with the professional's display name resolved.
type SkillResponse struct {
	models.Skill
	ProfessionalName string `json:"professionalName,omitempty"`
}

// DeletedResponse wraps a delete confirmation with the removed snapshot.
type DeletedResponse struct {
	Message string `json:"message"`
	Deleted any    `json:"deleted"`
}

// TokenResponse is the identity-issuance payload.
type TokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
