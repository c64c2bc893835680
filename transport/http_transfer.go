package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/model"
)

// CreateTransfer handler
// @Summary Create transfer
// @Description Offer products from the caller's inventory to another user. Stock is held until the recipient accepts or either side rejects.
// @Tags Transfer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.TransferRequest true "Transfer Request"
// @Success 201 {object} model.TransferResponse
// @Failure 400 {object} model.Response
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /transfer [post]
func (s *RestHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	actor, err := actorID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.TransferRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.CreateTransfer(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// AcceptTransfer handler
// @Summary Accept transfer
// @Tags Transfer
// @Security BearerAuth
// @Produce json
// @Param transferId path int true "Transfer ID"
// @Success 200 {object} model.TransferActionResponse
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /transfer/accept/{transferId} [post]
func (s *RestHandler) AcceptTransfer(w http.ResponseWriter, r *http.Request) {
	actor, transferID, err := actorAndTransfer(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.AcceptTransfer(r.Context(), actor, transferID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RejectTransfer handler
// @Summary Reject transfer
// @Description Either the sender or the recipient may reject. Stock returns to the sender.
// @Tags Transfer
// @Security BearerAuth
// @Produce json
// @Param transferId path int true "Transfer ID"
// @Success 200 {object} model.TransferActionResponse
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 409 {object} model.Response
// @Router /transfer/reject/{transferId} [post]
func (s *RestHandler) RejectTransfer(w http.ResponseWriter, r *http.Request) {
	actor, transferID, err := actorAndTransfer(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.RejectTransfer(r.Context(), actor, transferID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetTransfer handler
// @Summary Transfer detail
// @Tags Transfer
// @Security BearerAuth
// @Produce json
// @Param transferId path int true "Transfer ID"
// @Success 200 {object} model.Transfer
// @Failure 403 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /transfer/{transferId} [get]
func (s *RestHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	actor, transferID, err := actorAndTransfer(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.GetTransfer(r.Context(), actor, transferID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListPending handler
// @Summary Pending transfers
// @Description Pending transfers the user sent or received
// @Tags Transfer
// @Security BearerAuth
// @Produce json
// @Param userId path int true "User ID, must be the caller"
// @Success 200 {array} model.Transfer
// @Failure 403 {object} model.Response
// @Router /transfer/pending/{userId} [get]
func (s *RestHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	actor, userID, err := actorAndUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.ListPending(r.Context(), actor, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListHistory handler
// @Summary Transfer history
// @Description Every history row where the user is sender or recipient, newest first
// @Tags Transfer
// @Security BearerAuth
// @Produce json
// @Param userId path int true "User ID, must be the caller"
// @Success 200 {array} model.TransferHistoryView
// @Failure 403 {object} model.Response
// @Router /transfer/history/{userId} [get]
func (s *RestHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	actor, userID, err := actorAndUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.ListHistory(r.Context(), actor, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListSent handler
// @Summary Sent transfers
// @Tags Transfer
// @Security BearerAuth
// @Produce json
// @Param userId path int true "User ID, must be the caller"
// @Success 200 {array} model.TransferHistoryView
// @Failure 403 {object} model.Response
// @Router /transfer/sent/{userId} [get]
func (s *RestHandler) ListSent(w http.ResponseWriter, r *http.Request) {
	actor, userID, err := actorAndUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.ListSent(r.Context(), actor, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SearchUsers handler
// @Summary Find transfer recipients
// @Tags Transfer
// @Security BearerAuth
// @Produce json
// @Param search query string false "Name or email fragment"
// @Success 200 {array} model.UserDirectoryItem
// @Router /transfer/users [get]
func (s *RestHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.SearchUsers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func actorAndTransfer(r *http.Request) (uint64, uint64, error) {
	actor, err := actorID(r)
	if err != nil {
		return 0, 0, err
	}
	transferID, err := pathID(r, "transferId")
	if err != nil {
		return 0, 0, err
	}
	return actor, transferID, nil
}

func actorAndUser(r *http.Request) (uint64, uint64, error) {
	actor, err := actorID(r)
	if err != nil {
		return 0, 0, err
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		return 0, 0, err
	}
	return actor, userID, nil
}
