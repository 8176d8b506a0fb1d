package http

// FramingKind is the way an entity body is delimited on the wire. Exactly
// one kind is chosen per message, and the choice is final: it alone
// decides whether, and how, entity events follow the request start.
type FramingKind uint8

const (
	// FramingEmpty means the message carries no entity at all: it ends
	// right after the header section.
	FramingEmpty FramingKind = iota + 1
	// FramingStrict means the whole entity was already buffered when the
	// framing decision was made, so it is inlined into Request.Body and no
	// entity events follow.
	FramingStrict
	// FramingFixedLength means the entity is streamed via EntityPart
	// events until the declared Content-Length is exhausted.
	FramingFixedLength
	// FramingChunked means the entity is streamed via EntityPart events
	// until the terminal zero-length chunk.
	FramingChunked
)

func (k FramingKind) String() string {
	switch k {
	case FramingEmpty:
		return "empty"
	case FramingStrict:
		return "strict"
	case FramingFixedLength:
		return "fixed-length"
	case FramingChunked:
		return "chunked"
	default:
		return "unknown"
	}
}

type Framing struct {
	Kind FramingKind
	// Length is the declared entity length. Zero for empty and chunked
	// framing.
	Length int
}

// Streamed reports whether entity bytes arrive in follow-up events
// rather than inline.
func (f Framing) Streamed() bool {
	return f.Kind == FramingFixedLength || f.Kind == FramingChunked
}
