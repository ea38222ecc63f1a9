package api

import (
	"github.com/janedoe-dev/portfolio-api/auth"
	"github.com/janedoe-dev/portfolio-api/database"
)

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct
func initializeHandlers(db database.Database, tokens *auth.TokenService) *routeHandlers {
	return &routeHandlers{
		professionalHandler: newProfessionalHandler(db.ProfessionalRepo()),
		projectHandler:      newProjectHandler(db.ProjectRepo(), db.ProfessionalRepo()),
		skillHandler:        newSkillHandler(db.SkillRepo(), db.ProfessionalRepo()),
		userHandler:         newUserHandler(db.UserRepo()),
		authHandler:         newAuthHandler(db.UserRepo(), tokens),
	}
}
