package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/oseuis57/web-ecovision/util"
	"github.com/oseuis57/web-ecovision/util/tracing"
)

// ServerResponse is the envelope every handler returns.
type ServerResponse struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	StatusCode int         `json:"-"`
}

func respondWithError(err error, message, status string, tc *tracing.Context) *ServerResponse {
	requestID := ""
	if tc != nil {
		requestID = tc.RequestID
	}
	log.Printf("[%s] %s: %v", requestID, message, err)

	return &ServerResponse{
		Status:     status,
		Message:    message,
		StatusCode: util.StatusCode(status),
	}
}

func writeJSONResponse(w http.ResponseWriter, resp []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(resp); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, err error, status, message string) {
	log.Printf("%s: %v", message, err)

	resp := ServerResponse{
		Status:  status,
		Message: message,
	}
	respByte, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, respByte, util.StatusCode(status))
}
