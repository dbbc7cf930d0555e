package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrCloseConnection = NewError(CloseConnection, "actively closing the connection")

	// ErrStreamEmpty: the peer closed the stream before sending a single byte
	// of the next message. On a keep-alive connection this is the ordinary way
	// for a client to hang up.
	ErrStreamEmpty = NewError(CloseConnection, "stream ended before a start line")

	ErrInvalidStartLine     = NewError(BadRequest, "start line must consist of exactly 3 parts")
	ErrInvalidRequest       = NewError(BadRequest, "header continuation before any header field")
	ErrInvalidKeyWhitespace = NewError(BadRequest, "whitespace between a header key and a colon")
	ErrInvalidVersion       = NewError(HTTPVersionNotSupported, "unsupported protocol version")

	ErrBadRequest              = NewError(BadRequest, "bad request")
	ErrNotFound                = NewError(NotFound, "not found")
	ErrInternalServerError     = NewError(InternalServerError, "internal server error")
	ErrMethodNotAllowed        = NewError(MethodNotAllowed, "method not allowed")
	ErrNotImplemented          = NewError(NotImplemented, "not implemented")
	ErrRequestTimeout          = NewError(RequestTimeout, "request timeout")
	ErrHTTPVersionNotSupported = NewError(HTTPVersionNotSupported, "HTTP version not supported")

	ErrShutdown = NewError(ServiceUnavailable, "graceful shutdown")
)
