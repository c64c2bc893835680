package transport

import (
	"net/http"
	"strconv"
)

// ListProducts handler
// @Summary List catalog products
// @Tags Product
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10, max 100"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	// invalid values fall back to the defaults
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product detail
// @Tags Product
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} model.Response
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListUserProducts handler
// @Summary Products held by a user
// @Tags Product
// @Security BearerAuth
// @Produce json
// @Param userId path int true "User ID, must be the caller"
// @Success 200 {array} model.UserProduct
// @Failure 403 {object} model.Response
// @Router /products/user/{userId} [get]
func (s *RestHandler) ListUserProducts(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.ListUserProducts(r.Context(), actor, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
