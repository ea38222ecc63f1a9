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

type professionalHandler struct {
	responder        Responder
	logger           zerolog.Logger
	professionalRepo *database.ProfessionalRepo
}

func newProfessionalHandler(professionalRepo *database.ProfessionalRepo) professionalHandler {
	logger := log.With().Str("handlerName", "professionalHandler").Logger()

	return professionalHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		professionalRepo: professionalRepo,
	}
}

// getAllProfessionals lists every profile. On an empty store it seeds the
// fixed sample record once and answers 201 with that single record.
func (h professionalHandler) getAllProfessionals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		professionals, err := h.professionalRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "professionals", err))
			return
		}

		if len(professionals) == 0 {
			sample := models.SampleProfessional()
			if err := h.professionalRepo.Add(&sample); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("seed", "professional", err))
				return
			}
			h.logger.Info().Msg("seeded sample professional into empty store")
			h.responder.WriteJSON(w, http.StatusCreated, []*models.Professional{&sample})
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, professionals)
	}
}

func (h professionalHandler) getProfessional() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		professionalID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		professional, err := h.professionalRepo.FindByID(professionalID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "professional", err))
			return
		}
		if professional == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Professional not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, professional)
	}
}

func (h professionalHandler) createProfessional() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload validation.ProfessionalCreate
		if err := decodeBody(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		professional := payload.ToModel()
		if err := h.professionalRepo.Add(&professional); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "professional", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, professional)
	}
}

func (h professionalHandler) updateProfessional() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		professionalID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		professional, err := h.professionalRepo.FindByID(professionalID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "professional", err))
			return
		}
		if professional == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Professional not found"))
			return
		}

		var payload validation.ProfessionalUpdate
		if err := decodeBody(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		payload.Apply(professional)
		if err := h.professionalRepo.Update(professional); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "professional", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, professional)
	}
}

func (h professionalHandler) deleteProfessional() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		professionalID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		professional, err := h.professionalRepo.FindByID(professionalID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "professional", err))
			return
		}
		if professional == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Professional not found"))
			return
		}

		// No cascade: any projects or skills referencing this profile keep
		// their dangling reference.
		if err := h.professionalRepo.Delete(professionalID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "professional", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, DeletedResponse{
			Message: "Professional deleted successfully",
			Deleted: professional,
		})
	}
}

func (h professionalHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	return parsePathID(w, r, h.responder, "professionalID")
}
