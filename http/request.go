package http

import (
	"github.com/lumen-web/lumen/http/headers"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/http/uri"

	json "github.com/json-iterator/go"
)

// Request is the payload of a RequestStart event: everything that is
// known about a message once its header section is complete. The entity
// body is represented by Framing; only strict framing carries the bytes
// inline.
type Request struct {
	Method method.Method
	// RawMethod is set alongside Method == method.Custom and holds the
	// token admitted through the configured allow-list.
	RawMethod string
	Target    uri.Target
	// RawTarget preserves the exact bytes the target was scanned from,
	// before any decoding.
	RawTarget string
	Proto     proto.Proto
	Headers   *headers.Headers
	// ContentLength mirrors Headers.ContentLength for the common case;
	// zero when the header was absent.
	ContentLength int
	Framing       Framing
	// Body is the inline entity for FramingStrict, nil otherwise.
	Body []byte
	// ExpectsContinue is set when the client asked for a 100 Continue
	// interim response before transmitting the entity.
	ExpectsContinue bool
	// CloseAfterResponse is set when the connection must not be reused
	// for further messages once this one is answered.
	CloseAfterResponse bool
}

// Reset brings the request back to a blank state, keeping the allocated
// header storage around.
func (r *Request) Reset() {
	hdrs := r.Headers
	if hdrs != nil {
		hdrs.Reset()
	}

	*r = Request{Headers: hdrs}
}

// JSON convoys the strict inline body to a json unmarshaller. It cannot
// be used on requests with Content-Type incompatible with mime.JSON, nor
// on streamed entities (those must be collected by the driver first).
func (r *Request) JSON(model any) error {
	if r.Framing.Streamed() {
		return status.ErrUnprocessableEntity
	}

	if !mime.Complies(mime.JSON, r.Headers.ContentType) {
		return status.ErrUnsupportedMediaType
	}

	iterator := json.ConfigDefault.BorrowIterator(r.Body)
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}
