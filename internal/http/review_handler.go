package api

import (
	"net/http"

	"github.com/ystas1205/Educational-project/internal/domain/review"
)

type createReviewRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Grade     int     `json:"grade" validate:"required,min=1,max=5"`
	Comments  *string `json:"comments" validate:"omitempty,max=1000"`
}

// @Summary     List reviews
// @Tags        reviews
// @Produce     json
// @Success     200  {array}   review.Review
// @Router      /reviews/ [get]
func (h *Handler) handleListReviews(w http.ResponseWriter, r *http.Request) {
	items, err := h.reviewSvc.List(r.Context())
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary     List reviews of a product
// @Tags        reviews
// @Produce     json
// @Param       id   path      int64  true  "Product ID"
// @Success     200  {array}   review.Review
// @Failure     404  {object}  errorBody  "product not found"
// @Router      /reviews/products/{id} [get]
func (h *Handler) handleProductReviews(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorResponse(w, r, err)
		return
	}

	items, err := h.reviewSvc.ListByProduct(r.Context(), id)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary     Create review
// @Description Adds a review and recomputes the product rating.
// @Tags        reviews
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       request  body      createReviewRequest  true  "Review"
// @Success     201      {object}  review.Review
// @Failure     400      {object}  errorBody  "invalid body"
// @Failure     404      {object}  errorBody  "product not found"
// @Failure     409      {object}  errorBody  "already reviewed"
// @Router      /reviews/ [post]
func (h *Handler) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponse(w, r, err)
		return
	}

	rv, err := h.reviewSvc.Create(r.Context(), currentUser(r), review.Input{
		ProductID: req.ProductID,
		Grade:     req.Grade,
		Comments:  req.Comments,
	})
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

// @Summary     Delete review
// @Description Soft delete; the product rating is recomputed.
// @Tags        reviews
// @Security    BearerAuth
// @Produce     json
// @Param       id   path      int64  true  "Review ID"
// @Success     200  {object}  map[string]string
// @Failure     401  {object}  errorBody  "unauthorized"
// @Failure     403  {object}  errorBody  "forbidden"
// @Failure     404  {object}  errorBody  "not found"
// @Router      /reviews/{id} [delete]
func (h *Handler) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorResponse(w, r, err)
		return
	}

	if err := h.reviewSvc.Delete(r.Context(), id); err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Review deleted"})
}
