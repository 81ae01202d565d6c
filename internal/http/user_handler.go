package api

import (
	"net/http"

	"github.com/ystas1205/Educational-project/internal/domain/user"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin buyer seller"`
}

// @Summary     Register user
// @Description Creates a buyer (default) or seller account.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request  body      registerRequest  true  "Credentials and role"
// @Success     201      {object}  user.User
// @Failure     400      {object}  errorBody  "invalid body or email taken"
// @Failure     500      {object}  errorBody  "server error"
// @Router      /users/ [post]
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponse(w, r, err)
		return
	}

	u, err := h.userSvc.Register(r.Context(), req.Email, req.Password, user.Role(req.Role))
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// @Summary     Current user
// @Tags        users
// @Security    BearerAuth
// @Produce     json
// @Success     200  {object}  user.User
// @Failure     401  {object}  errorBody  "unauthorized"
// @Router      /users/me [get]
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentUser(r))
}

// @Summary     Deactivate user
// @Tags        users
// @Security    BearerAuth
// @Param       id   path  int64  true  "User ID"
// @Success     204
// @Failure     400  {object}  errorBody  "invalid id"
// @Failure     401  {object}  errorBody  "unauthorized"
// @Failure     403  {object}  errorBody  "forbidden"
// @Failure     404  {object}  errorBody  "not found"
// @Failure     500  {object}  errorBody  "server error"
// @Router      /users/{id}/deactivate [patch]
func (h *Handler) handleDeactivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorResponse(w, r, err)
		return
	}

	if err := h.userSvc.Deactivate(r.Context(), id); err != nil {
		errorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
