package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	userapp "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/constant"
	identitymocks "github.com/muhammadheryan/marketplace/mocks/application/identity"
	transfermocks "github.com/muhammadheryan/marketplace/mocks/application/transfer"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/transport"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const internalKey = "internal-key"

type emailOnlyUserApp struct {
	userapp.UserApp
}

func (emailOnlyUserApp) GetEmail(_ context.Context, userID uint64) (string, error) {
	if userID == 2 {
		return "bob@example.com", nil
	}
	return "", cerr.SetCustomError(constant.ErrNotFound)
}

type server struct {
	handler  http.Handler
	resolver *identitymocks.Resolver
	transfer *transfermocks.TransferApp
}

func newServer(t *testing.T) *server {
	resolver := identitymocks.NewResolver(t)
	transferApp := transfermocks.NewTransferApp(t)
	h := transport.NewTransport(emailOnlyUserApp{}, nil, transferApp, transport.Options{
		Resolver:       resolver,
		InternalAPIKey: internalKey,
	})
	return &server{handler: h, resolver: resolver, transfer: transferApp}
}

func (s *server) do(method, path, token, body string) (*httptest.ResponseRecorder, model.RawResponse) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env model.RawResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func (s *server) asUser(token string, userID uint64) {
	s.resolver.On("ResolveUserID", mock.Anything, token).Return(userID, nil)
}

func TestTransport_Auth(t *testing.T) {
	t.Run("health is public", func(t *testing.T) {
		s := newServer(t)
		rec, env := s.do(http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "0000", env.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		s := newServer(t)
		rec, env := s.do(http.MethodGet, "/transfer/pending/1", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrUnauthorize], env.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		s := newServer(t)
		s.resolver.On("ResolveUserID", mock.Anything, "expired").Return(uint64(0), errors.New("token expired"))
		rec, env := s.do(http.MethodGet, "/transfer/pending/1", "expired", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrUnauthorize], env.Code)
	})

	t.Run("identity service down", func(t *testing.T) {
		s := newServer(t)
		s.resolver.On("ResolveUserID", mock.Anything, "tok").Return(uint64(0), cerr.SetCustomError(constant.ErrUnavailable))
		rec, env := s.do(http.MethodGet, "/transfer/pending/1", "tok", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrUnavailable], env.Code)
	})
}

func TestTransport_CreateTransfer(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newServer(t)
		s.asUser("alice", 1)
		s.transfer.On("CreateTransfer", mock.Anything, uint64(1), mock.MatchedBy(func(req *model.TransferRequest) bool {
			return req.FromUserID == 1 && req.ToUserID == 2 && len(req.Items) == 1 &&
				req.Items[0].ProductID == 42 && req.Items[0].Quantity == 3
		})).Return(&model.TransferResponse{Message: "Transfer request sent", TransferID: 7, ItemsCount: 1}, nil).Once()

		rec, env := s.do(http.MethodPost, "/transfer", "alice",
			`{"fromUserId":1,"toUserId":2,"items":[{"productId":42,"quantity":3}]}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var res map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "Transfer request sent", res["message"])
		assert.EqualValues(t, 7, res["transferId"])
		assert.EqualValues(t, 1, res["itemsCount"])
	})

	t.Run("malformed body never reaches the app", func(t *testing.T) {
		s := newServer(t)
		s.asUser("alice", 1)
		rec, env := s.do(http.MethodPost, "/transfer", "alice", `{"fromUserId":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], env.Code)
	})

	t.Run("empty items", func(t *testing.T) {
		s := newServer(t)
		s.asUser("alice", 1)
		rec, _ := s.do(http.MethodPost, "/transfer", "alice", `{"fromUserId":1,"toUserId":2,"items":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		s := newServer(t)
		s.asUser("alice", 1)
		s.transfer.On("CreateTransfer", mock.Anything, uint64(1), mock.Anything).
			Return(nil, cerr.SetCustomErrorf(constant.ErrInsufficientStock, "invalid quantity for product Widget. Available: 2")).Once()

		rec, env := s.do(http.MethodPost, "/transfer", "alice",
			`{"fromUserId":1,"toUserId":2,"items":[{"productId":42,"quantity":3}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrInsufficientStock], env.Code)
		assert.Contains(t, env.Message, "Available: 2")
	})
}

func TestTransport_CompleteTransfer(t *testing.T) {
	s := newServer(t)
	s.asUser("bob", 2)
	s.transfer.On("AcceptTransfer", mock.Anything, uint64(2), uint64(7)).
		Return(&model.TransferActionResponse{Message: "Transfer accepted", TransferID: 7, Status: constant.TransferStatusAccepted, ItemsCount: 1}, nil).Once()
	s.transfer.On("RejectTransfer", mock.Anything, uint64(2), uint64(7)).
		Return(nil, cerr.SetCustomError(constant.ErrAlreadyProcessed)).Once()

	rec, env := s.do(http.MethodPost, "/transfer/accept/7", "bob", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var res model.TransferActionResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, constant.TransferStatusAccepted, res.Status)

	rec, env = s.do(http.MethodPost, "/transfer/reject/7", "bob", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrAlreadyProcessed], env.Code)
}

func TestTransport_InternalErrorsHideDetail(t *testing.T) {
	s := newServer(t)
	s.asUser("bob", 2)
	s.transfer.On("GetTransfer", mock.Anything, uint64(2), uint64(7)).
		Return(nil, errors.New("dial tcp 10.0.0.3:3306: connection refused")).Once()

	rec, env := s.do(http.MethodGet, "/transfer/7", "bob", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, constant.ErrorTypeMessage[constant.ErrInternal], env.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestTransport_ListRoutes(t *testing.T) {
	s := newServer(t)
	s.asUser("bob", 2)
	s.transfer.On("ListPending", mock.Anything, uint64(2), uint64(2)).Return([]model.Transfer{{ID: 7}}, nil).Once()
	s.transfer.On("ListHistory", mock.Anything, uint64(2), uint64(2)).Return([]model.TransferHistoryView{}, nil).Once()
	s.transfer.On("ListSent", mock.Anything, uint64(2), uint64(1)).Return(nil, cerr.SetCustomError(constant.ErrForbidden)).Once()

	rec, _ := s.do(http.MethodGet, "/transfer/pending/2", "bob", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = s.do(http.MethodGet, "/transfer/history/2", "bob", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = s.do(http.MethodGet, "/transfer/sent/1", "bob", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTransport_InternalKey(t *testing.T) {
	s := newServer(t)

	rec, env := s.do(http.MethodGet, "/internal/v1/user/2/email", "wrong", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrForbidden], env.Code)

	rec, env = s.do(http.MethodGet, "/internal/v1/user/2/email", internalKey, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var res model.UserEmailResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "bob@example.com", res.Email)

	rec, _ = s.do(http.MethodGet, "/internal/v1/user/3/email", internalKey, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
