package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/megano/internal/api/dto"
	"github.com/RoyceAzure/lab/megano/internal/api/middleware"
	"github.com/RoyceAzure/lab/megano/internal/pkg/api"
	"github.com/RoyceAzure/lab/megano/internal/service"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	authService service.IAuthService
	cookie      *middleware.SessionCookie
	logger      *zerolog.Logger
}

func NewAuthHandler(authService service.IAuthService, cookie *middleware.SessionCookie, logger *zerolog.Logger) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	if cookie == nil {
		panic("session cookie cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
		logger:      nopIfNil(logger),
	}
}

// @Summary sign in
// @Description username/password login, the anonymous cart moves to the new session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.SignInDTO true "username and password"
// @Success 200 {object} api.ResponseMessage "Logged in successfully"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Failure 401 {object} api.ResponseError "Invalid username or password"
// @Failure 429 {object} api.ResponseError "Too many requests"
// @Router /sign-in [post]
func (a *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var in dto.SignInDTO
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, a.logger, err)
		return
	}
	if err := validateDTO(in); err != nil {
		writeError(w, r, a.logger, err)
		return
	}

	session, err := a.authService.SignIn(r.Context(), currentSession(r), in.Username, in.Password)
	if err != nil {
		writeError(w, r, a.logger, err)
		return
	}

	a.cookie.Set(w, session.ID)
	api.MessageJSON(w, http.StatusOK, "Logged in successfully")
}

// @Summary sign up
// @Description create account and profile then log in
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.SignUpDTO true "name, username and password"
// @Success 201 {object} api.ResponseMessage "User registered successfully"
// @Failure 400 {object} api.ResponseError "Invalid request"
// @Failure 429 {object} api.ResponseError "Too many requests"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /sign-up [post]
func (a *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var in dto.SignUpDTO
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, a.logger, err)
		return
	}
	if err := validateDTO(in); err != nil {
		writeError(w, r, a.logger, err)
		return
	}

	session, err := a.authService.SignUp(r.Context(), currentSession(r), service.SignUpInput{
		Name:     in.Name,
		Username: in.Username,
		Password: in.Password,
	})
	if err != nil {
		writeError(w, r, a.logger, err)
		return
	}

	a.cookie.Set(w, session.ID)
	api.MessageJSON(w, http.StatusCreated, "User registered successfully")
}

// @Summary sign out
// @Description destroy the session together with its cart
// @Tags auth
// @Produce json
// @Success 200 {object} api.ResponseMessage "Logged out successfully"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /sign-out [post]
func (a *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := a.authService.SignOut(r.Context(), currentSession(r)); err != nil {
		writeError(w, r, a.logger, err)
		return
	}
	a.cookie.Clear(w)
	api.MessageJSON(w, http.StatusOK, "Logged out successfully")
}
