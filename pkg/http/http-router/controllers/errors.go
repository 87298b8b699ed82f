package controllers

import (
	"net/http"

	"go.uber.org/zap"
)

func (api *geocodeAPI) logError(r *http.Request, err error) {
	api.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
		zap.Error(err))
}

func (api *geocodeAPI) errorResponseJSON(w http.ResponseWriter, r *http.Request,
	status int, code, message string) {
	var response errorResponse
	response.Error.Code = code
	response.Error.Message = message

	if err := api.writeJSON(w, status, envelope{"error": response.Error}, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// BadRequestResponse answers a malformed or invalid request with 400.
func (api *geocodeAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponseJSON(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

// ServerErrorResponse answers an unexpected failure with 500 without leaking
// the underlying error to the client.
func (api *geocodeAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponseJSON(w, r, http.StatusInternalServerError, "server_error",
		"the server encountered a problem and could not process your request")
}
