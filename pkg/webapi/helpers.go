package webapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	giga "github.com/dogecoinfoundation/gigabase58/pkg"
	"go.uber.org/zap"
)

var httpCodeForError = map[string]int{
	string(giga.BadRequest):      400,
	string(giga.InvalidEncoding): 422,
	string(giga.InvalidChecksum): 422,
	string(giga.NotFound):        404,
	string(giga.UnknownError):    500,
}

func HttpStatusForError(code giga.ErrorCode) int {
	status, found := httpCodeForError[string(code)]
	if !found {
		status = http.StatusInternalServerError
	}
	return status
}

func sendResponse(w http.ResponseWriter, payload any) {
	// note: w.Header after this, so we can call sendErrorResponse
	b, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("in json.Marshal: %s", err.Error()), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store") // do not cache (Browsers cache GET forever by default)
	w.Write(b)
}

func (t WebAPI) sendBadRequest(w http.ResponseWriter, message string) {
	t.sendErrorResponse(w, http.StatusBadRequest, giga.BadRequest, message)
}

func (t WebAPI) sendError(w http.ResponseWriter, where string, err error) {
	var info *giga.ErrorInfo
	if errors.As(err, &info) {
		status := HttpStatusForError(info.Code)
		message := fmt.Sprintf("%s: %s", where, info.Message)
		t.sendErrorResponse(w, status, info.Code, message)
	} else {
		message := fmt.Sprintf("%s: %s", where, err.Error())
		t.sendErrorResponse(w, http.StatusInternalServerError, giga.UnknownError, message)
	}
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    giga.ErrorCode `json:"code"`
	Message string         `json:"message"`
}

func (t WebAPI) sendErrorResponse(w http.ResponseWriter, statusCode int, code giga.ErrorCode, message string) {
	t.log.Warn("request failed", zap.String("code", string(code)), zap.Int("status", statusCode), zap.String("message", message))
	// strings always marshal; invalid UTF-8 in message becomes U+FFFD
	payload, _ := json.Marshal(errorResponse{Error: errorBody{Code: code, Message: message}})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store") // do not cache (Browsers cache GET forever by default)
	w.WriteHeader(statusCode)
	w.Write(payload)
}
