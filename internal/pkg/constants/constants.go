package constants

import "net/http"

// CodedError carries the HTTP status the error handler should answer with.
type CodedError struct {
	message string
	code    int
}

func NewCodedError(message string, code int) *CodedError {
	return &CodedError{message: message, code: code}
}

func (e *CodedError) Error() string {
	return e.message
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound    = NewCodedError("not found", http.StatusNotFound)
	ErrBadRequest    = NewCodedError("bad request", http.StatusBadRequest)
	ErrDBUnavailable = NewCodedError("dataset unavailable", http.StatusInternalServerError)
)

// viper keys
const (
	ViperKeyHTTPAddr        = "http.addr"
	ViperKeyPostgresDSN     = "postgres.dsn"
	ViperKeyPostgresMaxConn = "postgres.max_conns"
	ViperKeyShutdownTimeout = "http.shutdown_timeout"
)

// CtxKeyRequestID keys the request id attached by the api middleware.
const CtxKeyRequestID = "request_id"
