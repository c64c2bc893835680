package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/marketplace/application/identity"
	productapp "github.com/muhammadheryan/marketplace/application/product"
	transferapp "github.com/muhammadheryan/marketplace/application/transfer"
	userapp "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	ProductApp  productapp.ProductApp
	TransferApp transferapp.TransferApp
}

type Options struct {
	Resolver       identity.Resolver
	InternalAPIKey string
	RequestTimeout time.Duration
}

func NewTransport(UserApp userapp.UserApp, ProductApp productapp.ProductApp, TransferApp transferapp.TransferApp, opts Options) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:     UserApp,
		ProductApp:  ProductApp,
		TransferApp: TransferApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/refresh", rh.Refresh).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/user/{userId:[0-9]+}", rh.ListUserProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)

	mux.HandleFunc("/transfer", rh.CreateTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfer/accept/{transferId:[0-9]+}", rh.AcceptTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfer/reject/{transferId:[0-9]+}", rh.RejectTransfer).Methods(http.MethodPost)
	mux.HandleFunc("/transfer/pending/{userId:[0-9]+}", rh.ListPending).Methods(http.MethodGet)
	mux.HandleFunc("/transfer/history/{userId:[0-9]+}", rh.ListHistory).Methods(http.MethodGet)
	mux.HandleFunc("/transfer/sent/{userId:[0-9]+}", rh.ListSent).Methods(http.MethodGet)
	mux.HandleFunc("/transfer/users", rh.SearchUsers).Methods(http.MethodGet)
	mux.HandleFunc("/transfer/{transferId:[0-9]+}", rh.GetTransfer).Methods(http.MethodGet)

	// internal routes, service to service
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/auth/validate", rh.InternalValidateToken).Methods(http.MethodPost)
	internal.HandleFunc("/user/{id:[0-9]+}/email", rh.InternalUserEmail).Methods(http.MethodGet)
	internal.HandleFunc("/product", rh.InternalCreateProduct).Methods(http.MethodPost)
	internal.HandleFunc("/product/{id:[0-9]+}", rh.InternalDeleteProduct).Methods(http.MethodDelete)
	internal.HandleFunc("/inventory", rh.InternalProvisionStock).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(TimeoutMiddleware(opts.RequestTimeout))
	mux.Use(AuthMiddleware(opts.Resolver))

	return mux
}

// decodeAndValidate reads a JSON body into req and runs struct validation.
func decodeAndValidate(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomErrorf(constant.ErrInvalidRequest, "malformed JSON body")
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomErrorf(constant.ErrInvalidRequest, "%s", validatorx.Describe(err))
	}
	return nil
}

func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomErrorf(constant.ErrInvalidRequest, "invalid %s", name)
	}
	return id, nil
}

func actorID(r *http.Request) (uint64, error) {
	id, ok := utilsContext.GetUserID(r.Context())
	if !ok || id == 0 {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return id, nil
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} model.Response
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} model.Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Refresh handler
// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RefreshRequest true "Refresh Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} model.Response
// @Router /refresh [post]
func (s *RestHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Refresh(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := bearerToken(r)
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
