package api

import (
	"net/http"

	"github.com/ystas1205/Educational-project/internal/platform/apperr"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type loginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// @Summary     Log in
// @Description Password grant: form fields username (email) and password.
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       username  formData  string  true  "Email"
// @Param       password  formData  string  true  "Password"
// @Success     200  {object}  auth.TokenPair
// @Failure     400  {object}  errorBody  "invalid form"
// @Failure     401  {object}  errorBody  "invalid credentials"
// @Failure     429  {object}  errorBody  "rate limited"
// @Router      /users/token [post]
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		errorResponse(w, r, apperr.Validation("invalid_input", "invalid form", err))
		return
	}
	form := loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := validateStruct(&form); err != nil {
		errorResponse(w, r, err)
		return
	}

	pair, err := h.sessions.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

// @Summary     Rotate refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request  body      refreshRequest  true  "Current refresh token"
// @Success     200      {object}  map[string]string
// @Failure     400      {object}  errorBody  "invalid body"
// @Failure     401      {object}  errorBody  "invalid refresh token"
// @Router      /users/refresh-token [post]
func (h *Handler) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponse(w, r, err)
		return
	}

	token, err := h.sessions.RotateRefresh(r.Context(), req.RefreshToken)
	if err != nil {
		rejectToken(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"refresh_token": token,
		"token_type":    "bearer",
	})
}

// @Summary     Issue access token
// @Description Exchanges a refresh token for a new access token. The token is
// @Description returned under both refresh_token and access_token.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request  body      refreshRequest  true  "Refresh token"
// @Success     200      {object}  map[string]string
// @Failure     400      {object}  errorBody  "invalid body"
// @Failure     401      {object}  errorBody  "invalid refresh token"
// @Router      /users/new_token [post]
func (h *Handler) handleNewToken(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponse(w, r, err)
		return
	}

	token, err := h.sessions.NewAccess(r.Context(), req.RefreshToken)
	if err != nil {
		rejectToken(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"refresh_token": token,
		"access_token":  token,
		"token_type":    "bearer",
	})
}
