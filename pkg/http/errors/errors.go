package errors

import (
	"encoding/json"
	"net/http"
)

// Response is the stable error body the trivia frontend matches on:
// the numeric status is repeated in the payload and the message text
// is fixed per status.
type Response struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Respond writes an error response with the given status and message.
func Respond(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondBadRequest writes a 400 response.
func RespondBadRequest(w http.ResponseWriter) {
	Respond(w, http.StatusBadRequest, MsgBadRequest)
}

// RespondNotFound writes a 404 response.
func RespondNotFound(w http.ResponseWriter) {
	Respond(w, http.StatusNotFound, MsgNotFound)
}

// RespondUnprocessable writes a 422 response.
func RespondUnprocessable(w http.ResponseWriter) {
	Respond(w, http.StatusUnprocessableEntity, MsgUnprocessable)
}

// RespondInternalError writes a 500 response.
func RespondInternalError(w http.ResponseWriter) {
	Respond(w, http.StatusInternalServerError, MsgInternal)
}
