package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/model"
)

// InternalValidateToken handler
// @Summary Validate access token
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.ValidateTokenRequest true "Token"
// @Success 200 {object} model.ValidateTokenResponse
// @Failure 401 {object} model.Response
// @Router /internal/v1/auth/validate [post]
func (s *RestHandler) InternalValidateToken(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateTokenRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	userID, err := s.UserApp.ValidateToken(r.Context(), req.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.ValidateTokenResponse{UserID: userID})
}

// InternalUserEmail handler
// @Summary Contact address of a user
// @Tags Internal
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.UserEmailResponse
// @Failure 404 {object} model.Response
// @Router /internal/v1/user/{id}/email [get]
func (s *RestHandler) InternalUserEmail(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	email, err := s.UserApp.GetEmail(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.UserEmailResponse{UserID: userID, Email: email})
}

// InternalCreateProduct handler
// @Summary Create catalog product
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Product"
// @Success 201 {object} model.Product
// @Failure 400 {object} model.Response
// @Router /internal/v1/product [post]
func (s *RestHandler) InternalCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.CreateProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// InternalDeleteProduct handler
// @Summary Delete catalog product
// @Description Removes the product and every inventory entry of it. Transfer records keep their snapshot.
// @Tags Internal
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /internal/v1/product/{id} [delete]
func (s *RestHandler) InternalDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// InternalProvisionStock handler
// @Summary Credit stock to a user
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.ProvisionRequest true "Provision"
// @Success 200 {object} model.InventoryEntry
// @Failure 404 {object} model.Response
// @Router /internal/v1/inventory [post]
func (s *RestHandler) InternalProvisionStock(w http.ResponseWriter, r *http.Request) {
	var req model.ProvisionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.ProvisionStock(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
