package response

// Business result codes, aligned with HTTP semantics.
const (
	CodeOK          = 0
	CodeBadRequest  = 400
	CodeNotFound    = 404
	CodeConflict    = 409
	CodeServerError = 500
)

// CodeMsgMap centralizes code to default-message mapping.
var CodeMsgMap = map[int]string{
	CodeOK:          "OK",
	CodeBadRequest:  "Bad Request",
	CodeNotFound:    "Not Found",
	CodeConflict:    "Conflict",
	CodeServerError: "Internal Server Error",
}
