package resp

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope - единый формат ответа
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// WriteJSONResponse - пишет v как JSON с кодом code
func WriteJSONResponse(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func Success(w http.ResponseWriter, message string, data any) {
	WriteJSONResponse(w, http.StatusOK, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

func Error(w http.ResponseWriter, code int, message string) {
	WriteJSONResponse(w, code, Envelope{Status: StatusError, Message: message})
}
