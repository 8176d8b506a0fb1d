package http

// EventKind enumerates everything the parser may hand to its driver.
type EventKind uint8

const (
	// NeedMoreData suspends the loop: the current structural element is
	// incomplete and parsing will be retried once more bytes are pushed.
	NeedMoreData EventKind = iota + 1
	// RequestStart carries a fully parsed request line and header section.
	RequestStart
	// EntityPart carries a piece of a streamed entity body.
	EntityPart
	// EntityEnd marks the end of a streamed entity body.
	EntityEnd
	// StreamEnd is a clean end of the connection at a message boundary.
	StreamEnd
	// Failure is a fatal condition; the connection must be torn down.
	Failure
)

func (k EventKind) String() string {
	switch k {
	case NeedMoreData:
		return "need more data"
	case RequestStart:
		return "request start"
	case EntityPart:
		return "entity part"
	case EntityEnd:
		return "entity end"
	case StreamEnd:
		return "stream end"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Event is a single element of the emitted event sequence. Request is set
// for RequestStart, Chunk for EntityPart, Err for Failure; all other
// kinds carry nothing.
//
// WARNING: Chunk and any strict inline body alias the connection buffer
// and stay valid only until the parser is polled or fed again. Consume or
// copy them first.
type Event struct {
	Kind    EventKind
	Request *Request
	Chunk   []byte
	Err     error
}
