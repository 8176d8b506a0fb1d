package headers

import (
	"github.com/lumen-web/lumen/internal/datastruct"
)

// Headers is the final header sequence of a single message: the ordered
// raw entries plus the handful of fields the framing decision depends on,
// derived once during header-block parsing so the hot path never has to
// rescan the sequence.
type Headers struct {
	*datastruct.KeyValue

	// ContentLength is meaningful only when HasContentLength is set.
	ContentLength    int
	HasContentLength bool
	ContentType      string
	// TransferEncoding lists the codings in their wire order. Chunked is
	// set when the final coding is "chunked".
	TransferEncoding []string
	Chunked          bool
	HasTrailer       bool
	HasHost          bool
	Upgrade          string
	Connection       string
	ExpectsContinue  bool
}

func New() *Headers {
	return NewPrealloc(0)
}

func NewPrealloc(n int) *Headers {
	return &Headers{KeyValue: datastruct.NewKeyValuePreAlloc(n)}
}

// NewFromMap exists for tests and manual construction; derived fields are
// NOT computed here.
func NewFromMap(m map[string][]string) *Headers {
	return &Headers{KeyValue: datastruct.NewKeyValueFromMap(m)}
}

// Reset forgets everything about the previous message.
func (h *Headers) Reset() {
	h.KeyValue.Clear()
	h.ContentLength = 0
	h.HasContentLength = false
	h.ContentType = ""
	h.TransferEncoding = h.TransferEncoding[:0]
	h.Chunked = false
	h.HasTrailer = false
	h.HasHost = false
	h.Upgrade = ""
	h.Connection = ""
	h.ExpectsContinue = false
}
