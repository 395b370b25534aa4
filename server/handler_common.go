package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"social_osint/shared"
)

const (
	apiKeyHeader      = "X-API-KEY"
	metricsAuthHeader = "Authorization"
	maxBodyLen        = 1 << 20
	internalErrorStr  = "500 Internal Server Error"
	badRequestStr     = "400 Invalid Request"
	notFoundStr       = "404 Not Found"
	badApiKeyStr      = "401 Missing or Invalid API Key"
	badAuthorization  = "401 Missing or Invalid Authorization"
)

// Defines a single HTTP handler (endpoint)
type handlerDef struct {
	method  string
	pattern string
	handler func(http.ResponseWriter, *http.Request)
}

// IHandlerGroup groups together multiple HTTP handler definitions.
type IHandlerGroup interface {
	Prefix() string
	GroupDefs() []handlerDef
	AuthMW() func(next http.Handler) http.Handler
}

// Returns the JSON serialized object as the response body; handles errors.
func writeJsonResponse(logger shared.ILogger, w http.ResponseWriter, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	var err error
	var respJson []byte
	if respJson, err = json.Marshal(resp); err != nil {
		logger.Warnf("Failed to serialize response: %v\n", err)
		http.Error(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if _, err = fmt.Fprintln(w, string(respJson)); err != nil {
		logger.Warnf("Failed to write response: %v\n", err)
	}
}

type errorResp struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
	// Failures lists the targets that could not be collected, when the error is about an analysis.
	Failures any `json:"failures,omitempty"`
}

func writeErrorResponse(w http.ResponseWriter, msg string, code int) {
	writeErrorWithDetails(w, errorResp{Error: msg, Status: code})
}

func writeErrorWithDetails(w http.ResponseWriter, resp errorResp) {
	respJson, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(resp.Status)
	fmt.Fprintln(w, string(respJson))
}

func readBody(logger shared.ILogger, w http.ResponseWriter, r *http.Request) []byte {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyLen))
	if err != nil {
		logger.Warnf("Failed to read request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return nil
	}
	return body
}
