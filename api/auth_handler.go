package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/janedoe-dev/portfolio-api/auth"
	"github.com/janedoe-dev/portfolio-api/database"
	"github.com/janedoe-dev/portfolio-api/errs"
	"github.com/janedoe-dev/portfolio-api/validation"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	tokens    *auth.TokenService
}

func newAuthHandler(userRepo *database.UserRepo, tokens *auth.TokenService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		tokens:    tokens,
	}
}

// register creates a user and issues a fresh token in one step.
func (h authHandler) register() http.HandlerFunc {
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

		token, err := h.tokens.Generate(user.ID, user.Email)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, TokenResponse{
			Token: token,
			User:  &user,
		})
	}
}

// login verifies credentials and issues a token. Unknown email and wrong
// password produce byte-identical 401 responses on purpose.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload validation.Credentials
		if err := decodeBody(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByEmail(payload.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil || !auth.CheckPassword(user.Password, payload.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid email or password"))
			return
		}

		token, err := h.tokens.Generate(user.ID, user.Email)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, TokenResponse{
			Token: token,
			User:  user,
		})
	}
}

// me returns the record of the authenticated caller.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDStr, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Authentication required"))
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid or expired token"))
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
