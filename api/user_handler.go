package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/janedoe-dev/portfolio-api/auth"
	"github.com/janedoe-dev/portfolio-api/database"
	"github.com/janedoe-dev/portfolio-api/errs"
	"github.com/janedoe-dev/portfolio-api/validation"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newUserHandler(userRepo *database.UserRepo) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
	}
}

func (h userHandler) getAllUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "users", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, users)
	}
}

func (h userHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parsePathID(w, r, h.responder, "userID")
		if !ok {
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("User not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, user)
	}
}

func (h userHandler) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload validation.UserCreate
		if err := decodeBody(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.userRepo.FindByEmail(payload.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewDuplicateError("Duplicate email", "User with this email already exists"))
			return
		}

		user := payload.ToModel()
		user.Password, err = auth.HashPassword(payload.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, user)
	}
}

func (h userHandler) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parsePathID(w, r, h.responder, "userID")
		if !ok {
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("User not found"))
			return
		}

		var payload validation.UserUpdate
		if err := decodeBody(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if payload.Email != nil && *payload.Email != user.Email {
			existing, err := h.userRepo.FindByEmail(*payload.Email)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
				return
			}
			if existing != nil {
				h.responder.WriteError(w, errs.NewDuplicateError("Duplicate email", "User with this email already exists"))
				return
			}
			user.Email = *payload.Email
		}

		// A submitted password is re-hashed before the write; the plain
		// value never reaches the store.
		if payload.Password != nil {
			hashed, err := auth.HashPassword(*payload.Password)
			if err != nil {
				h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
				return
			}
			user.Password = hashed
		}

		if payload.Role != nil {
			user.Role = *payload.Role
		}

		if err := h.userRepo.Update(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "user", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, user)
	}
}

func (h userHandler) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parsePathID(w, r, h.responder, "userID")
		if !ok {
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("User not found"))
			return
		}

		if err := h.userRepo.Delete(userID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "user", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, DeletedResponse{
			Message: "User deleted successfully",
			Deleted: user,
		})
	}
}
