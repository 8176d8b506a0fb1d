package transport

import (
	"errors"

	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/headers"
	"github.com/lumen-web/lumen/http/uri"
)

// ErrMoreData signals that the current structural element is not fully
// buffered yet. Collaborators return it instead of failing; the message
// loop converts it into a NeedMoreData event and retries the element once
// the driver pushes more bytes. It must never reach the driver as an
// actual error.
var ErrMoreData = errors.New("need more data")

// Parser is a single connection's message loop. One instance serves one
// connection; instances share nothing but read-only configuration.
//
// The driver feeds raw byte segments via Push as they arrive, calls Close
// exactly once when upstream is done, and calls Poll whenever it is ready
// to consume the next event. Poll never blocks: suspension is the
// NeedMoreData event.
type Parser interface {
	Push(data []byte)
	Close()
	Poll() http.Event
}

// HeaderParser tokenizes a complete header block. Parsing is
// all-or-nothing: on ErrMoreData nothing may be recorded in into, so the
// whole block can be retried from the same offset later.
type HeaderParser interface {
	Parse(data []byte, pos int, into *headers.Headers) (newPos int, err error)
}

// TargetParser applies the URI grammar to an already bounds-checked
// request-target byte range.
type TargetParser interface {
	Parse(raw []byte, mode uri.Mode) (uri.Target, error)
}

// EntityStreamer delivers the bytes of one streamed entity. Stream
// consumes entity bytes starting at pos and returns a zero-copy chunk;
// done is set together with (or after) the final chunk. ErrMoreData means
// no complete piece is buffered.
type EntityStreamer interface {
	Stream(data []byte, pos int) (chunk []byte, newPos int, done bool, err error)
}

// FixedStreamer streams an entity delimited by Content-Length.
type FixedStreamer interface {
	EntityStreamer
	Init(length int)
}

// ChunkedStreamer streams an entity delimited by the chunked transfer
// coding.
type ChunkedStreamer interface {
	EntityStreamer
	Init(hasTrailer bool)
}

// HandshakeDetector recognizes a protocol upgrade handshake in a finished
// header section and, when it does, returns one header pair to prepend to
// the emitted header sequence.
type HandshakeDetector interface {
	Detect(hdrs *headers.Headers, hostPresent bool) (key, value string, ok bool)
}
