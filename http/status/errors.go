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
	ErrBadRequest         = NewError(BadRequest, "bad request")
	ErrTooLongRequestLine = NewError(BadRequest, "request line is too long")
	ErrBadChunk           = NewError(BadRequest, "malformed chunk-encoded data")
	ErrMissingHost        = NewError(BadRequest, "missing Host header")
	ErrConflictingFraming = NewError(BadRequest, "both Content-Length and chunked Transfer-Encoding present")
	ErrTruncatedStream    = NewError(BadRequest, "connection closed in the middle of a message")
	// ErrTLSOverPlaintext is reported when the very first octet of a connection is
	// a TLS handshake byte, which commonly means an https client hit a plaintext port.
	ErrTLSOverPlaintext = NewError(BadRequest, "TLS handshake received on a plaintext connection")

	ErrMethodNotImplemented = NewError(NotImplemented, "request method is not supported")
	ErrURITooLong           = NewError(RequestURITooLong, "request URI too long")
	ErrUnsupportedProtocol  = NewError(HTTPVersionNotSupported, "protocol is not supported")
	ErrUnprocessableEntity  = NewError(UnprocessableEntity, "request method does not allow a body")
	ErrUnsupportedMediaType = NewError(UnsupportedMediaType, "unsupported media type")

	ErrHeaderFieldsTooLarge  = NewError(HeaderFieldsTooLarge, "too large headers section")
	ErrTooManyHeaders        = NewError(HeaderFieldsTooLarge, "too many headers")
	ErrTooManyEncodingTokens = NewError(HeaderFieldsTooLarge, "too many encoding tokens specified")

	ErrBodyTooLarge = NewError(RequestEntityTooLarge, "request body is too large")
)
