package errors

// Canonical error messages. Clients display these verbatim, so the
// exact strings are part of the API contract.
const (
	MsgBadRequest    = "Bad Request"
	MsgNotFound      = "Resource Not Found"
	MsgUnprocessable = "Unprocessable entity"
	MsgInternal      = "Internal Server Error"
)
