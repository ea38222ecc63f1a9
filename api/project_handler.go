package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/janedoe-dev/portfolio-api/database"
	"github.com/janedoe-dev/portfolio-api/errs"
	"github.com/janedoe-dev/portfolio-api/models"
	"github.com/janedoe-dev/portfolio-api/validation"
)

type projectHandler struct {
	responder        Responder
	logger           zerolog.Logger
	projectRepo      *database.ProjectRepo
	professionalRepo *database.ProfessionalRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, professionalRepo *database.ProfessionalRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		projectRepo:      projectRepo,
		professionalRepo: professionalRepo,
	}
}

// getAllProjects lists every project with the owning professional's name
// resolved in place of a bare reference.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		names, err := professionalNames(h.professionalRepo)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "professionals", err))
			return
		}

		response := make([]ProjectResponse, 0, len(projects))
		for _, project := range projects {
			response = append(response, ProjectResponse{
				Project:          *project,
				ProfessionalName: names[project.ProfessionalID],
			})
		}

		h.responder.WriteJSON(w, http.StatusOK, response)
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := parsePathID(w, r, h.responder, "projectID")
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.respondWithProject(w, http.StatusOK, project)
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload validation.ProjectCreate
		if err := decodeBody(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Referential integrity on the submitted payload: a missing target
		// is the caller's fault, so this is a validation error, never 404.
		if ok, err := h.professionalExists(payload.ProfessionalID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "professional", err))
			return
		} else if !ok {
			h.responder.WriteError(w, errs.NewValidationError("Professional ID does not exist"))
			return
		}

		project := payload.ToModel()
		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.respondWithProject(w, http.StatusCreated, &project)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := parsePathID(w, r, h.responder, "projectID")
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		var payload validation.ProjectUpdate
		if err := decodeBody(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if payload.ProfessionalID != nil {
			if ok, err := h.professionalExists(*payload.ProfessionalID); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "professional", err))
				return
			} else if !ok {
				h.responder.WriteError(w, errs.NewValidationError("Professional ID does not exist"))
				return
			}
		}

		payload.Apply(project)
		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.respondWithProject(w, http.StatusOK, project)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := parsePathID(w, r, h.responder, "projectID")
		if !ok {
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, DeletedResponse{
			Message: "Project deleted successfully",
			Deleted: project,
		})
	}
}

func (h projectHandler) professionalExists(id string) (bool, error) {
	professionalID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	professional, err := h.professionalRepo.FindByID(professionalID)
	if err != nil {
		return false, err
	}
	return professional != nil, nil
}

func (h projectHandler) respondWithProject(w http.ResponseWriter, status int, project *models.Project) {
	name, err := professionalName(h.professionalRepo, project.ProfessionalID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "professional", err))
		return
	}

	h.responder.WriteJSON(w, status, ProjectResponse{
		Project:          *project,
		ProfessionalName: name,
	})
}

// professionalNames builds an id -> display-name lookup for list responses.
func professionalNames(repo *database.ProfessionalRepo) (map[uuid.UUID]string, error) {
	professionals, err := repo.FindAll()
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(professionals))
	for _, professional := range professionals {
		names[professional.ID] = professional.ProfessionalName
	}
	return names, nil
}

// professionalName resolves one display name; a dangling reference resolves
// to the empty string rather than an error.
func professionalName(repo *database.ProfessionalRepo, id uuid.UUID) (string, error) {
	professional, err := repo.FindByID(id)
	if err != nil {
		return "", err
	}
	if professional == nil {
		return "", nil
	}
	return professional.ProfessionalName, nil
}
