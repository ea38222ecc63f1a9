package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/janedoe-dev/portfolio-api/database"
	"github.com/janedoe-dev/portfolio-api/errs"
	"github.com/janedoe-dev/portfolio-api/models"
	"github.com/janedoe-dev/portfolio-api/validation"
)

type skillHandler struct {
	responder        Responder
	logger           zerolog.Logger
	skillRepo        *database.SkillRepo
	professionalRepo *database.ProfessionalRepo
}

func newSkillHandler(skillRepo *database.SkillRepo, professionalRepo *database.ProfessionalRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		skillRepo:        skillRepo,
		professionalRepo: professionalRepo,
	}
}

func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		names, err := professionalNames(h.professionalRepo)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "professionals", err))
			return
		}

		response := make([]SkillResponse, 0, len(skills))
		for _, skill := range skills {
			response = append(response, SkillResponse{
				Skill:            *skill,
				ProfessionalName: names[skill.ProfessionalID],
			})
		}

		h.responder.WriteJSON(w, http.StatusOK, response)
	}
}

func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := parsePathID(w, r, h.responder, "skillID")
		if !ok {
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill not found"))
			return
		}

		h.respondWithSkill(w, http.StatusOK, skill)
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload validation.SkillCreate
		if err := decodeBody(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if ok, err := h.professionalExists(payload.ProfessionalID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "professional", err))
			return
		} else if !ok {
			h.responder.WriteError(w, errs.NewValidationError("Professional ID does not exist"))
			return
		}

		// Uniqueness needs a store round trip, so it lives here rather than
		// in the pure validator. The unique index backstops the race.
		if err := h.checkNameAvailable(payload.Name, uuid.Nil); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill := payload.ToModel()
		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		h.respondWithSkill(w, http.StatusCreated, &skill)
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := parsePathID(w, r, h.responder, "skillID")
		if !ok {
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill not found"))
			return
		}

		var payload validation.SkillUpdate
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

		if payload.Name != nil {
			if err := h.checkNameAvailable(*payload.Name, skill.ID); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		payload.Apply(skill)
		if err := h.skillRepo.Update(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.respondWithSkill(w, http.StatusOK, skill)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := parsePathID(w, r, h.responder, "skillID")
		if !ok {
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill not found"))
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, DeletedResponse{
			Message: "Skill deleted successfully",
			Deleted: skill,
		})
	}
}

// checkNameAvailable enforces skill-name uniqueness, ignoring the skill
// being updated itself.
func (h skillHandler) checkNameAvailable(name string, selfID uuid.UUID) error {
	existing, err := h.skillRepo.FindByName(strings.TrimSpace(name))
	if err != nil {
		return wrapDatabaseError("find", "skill", err)
	}
	if existing != nil && existing.ID != selfID {
		return errs.NewDuplicateError("Duplicate skill", "A skill with this name already exists")
	}
	return nil
}

func (h skillHandler) professionalExists(id string) (bool, error) {
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

func (h skillHandler) respondWithSkill(w http.ResponseWriter, status int, skill *models.Skill) {
	name, err := professionalName(h.professionalRepo, skill.ProfessionalID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "professional", err))
		return
	}

	h.responder.WriteJSON(w, status, SkillResponse{
		Skill:            *skill,
		ProfessionalName: name,
	})
}
