package api

import (
	"net/http"

	"github.com/ystas1205/Educational-project/internal/domain/category"
)

type createCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,gt=0"`
}

// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Success     200  {array}   category.Category
// @Failure     500  {object}  errorBody  "server error"
// @Router      /categories/ [get]
func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.categorySvc.List(r.Context())
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// @Summary     Create category
// @Tags        categories
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       request  body      createCategoryRequest  true  "Category"
// @Success     201      {object}  category.Category
// @Failure     400      {object}  errorBody  "invalid body or parent"
// @Failure     401      {object}  errorBody  "unauthorized"
// @Failure     403      {object}  errorBody  "forbidden"
// @Router      /categories/ [post]
func (h *Handler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponse(w, r, err)
		return
	}

	c := &category.Category{Name: req.Name, ParentID: req.ParentID}
	if err := h.categorySvc.Create(r.Context(), c); err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}
