package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	write(w, status, model.Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError renders a CustomError with its status and code. Anything else is
// reported as a generic internal error so details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = cerr.SetCustomError(constant.ErrInternal)
	}

	message := ce.Error()
	if ce.Type() == constant.ErrInternal {
		message = constant.ErrorTypeMessage[constant.ErrInternal]
	}

	write(w, ce.ErrorHTTPCode(), model.Response{
		Code:    ce.ErrorCode(),
		Message: message,
	})
}

func write(w http.ResponseWriter, status int, body model.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("[write] encode response", zap.String("error", err.Error()))
	}
}
