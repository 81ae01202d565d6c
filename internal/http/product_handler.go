package api

import (
	"net/http"
	"strconv"

	"github.com/ystas1205/Educational-project/internal/domain/product"
)

const defaultPageSize = 20

type productRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url,max=200"`
	Stock       *int    `json:"stock" validate:"required,gte=0"`
	CategoryID  int64   `json:"category_id" validate:"required,gt=0"`
}

func (req productRequest) input() product.Input {
	return product.Input{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       *req.Stock,
		CategoryID:  req.CategoryID,
	}
}

// @Summary     List products
// @Tags        products
// @Produce     json
// @Param       page       query     int  false  "Page number"  default(1)
// @Param       page_size  query     int  false  "Page size"    default(20)
// @Success     200        {object}  product.Page
// @Failure     400        {object}  errorBody  "invalid page"
// @Router      /products/ [get]
func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		errorResponse(w, r, product.ErrInvalidPage)
		return
	}
	size, err := queryInt(r, "page_size", defaultPageSize)
	if err != nil {
		errorResponse(w, r, product.ErrInvalidPage)
		return
	}

	result, err := h.productSvc.List(r.Context(), page, size)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// @Summary     List products of a category
// @Tags        products
// @Produce     json
// @Param       id   path      int64  true  "Category ID"
// @Success     200  {array}   product.Product
// @Failure     404  {object}  errorBody  "category not found"
// @Router      /products/category/{id} [get]
func (h *Handler) handleProductsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorResponse(w, r, err)
		return
	}

	items, err := h.productSvc.ListByCategory(r.Context(), id)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary     Get product
// @Tags        products
// @Produce     json
// @Param       id   path      int64  true  "Product ID"
// @Success     200  {object}  product.Product
// @Failure     404  {object}  errorBody  "not found"
// @Router      /products/{id} [get]
func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorResponse(w, r, err)
		return
	}

	p, err := h.productSvc.Get(r.Context(), id)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Summary     Create product
// @Tags        products
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       request  body      productRequest  true  "Product"
// @Success     201      {object}  product.Product
// @Failure     400      {object}  errorBody  "invalid body or category"
// @Failure     401      {object}  errorBody  "unauthorized"
// @Failure     403      {object}  errorBody  "forbidden"
// @Router      /products/ [post]
func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponse(w, r, err)
		return
	}

	p, err := h.productSvc.Create(r.Context(), currentUser(r), req.input())
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// @Summary     Update product
// @Tags        products
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       id       path      int64           true  "Product ID"
// @Param       request  body      productRequest  true  "Product"
// @Success     200      {object}  product.Product
// @Failure     400      {object}  errorBody  "invalid body or category"
// @Failure     403      {object}  errorBody  "not owner"
// @Failure     404      {object}  errorBody  "not found"
// @Router      /products/{id} [put]
func (h *Handler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		errorResponse(w, r, err)
		return
	}

	p, err := h.productSvc.Update(r.Context(), currentUser(r), id, req.input())
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Summary     Delete product
// @Description Soft delete; the product is returned with is_active=false.
// @Tags        products
// @Security    BearerAuth
// @Produce     json
// @Param       id   path      int64  true  "Product ID"
// @Success     200  {object}  product.Product
// @Failure     403  {object}  errorBody  "not owner"
// @Failure     404  {object}  errorBody  "not found"
// @Router      /products/{id} [delete]
func (h *Handler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		errorResponse(w, r, err)
		return
	}

	p, err := h.productSvc.Delete(r.Context(), currentUser(r), id)
	if err != nil {
		errorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
