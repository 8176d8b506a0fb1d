package config

import (
	"github.com/lumen-web/lumen/http/uri"
)

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}

	RequestLine struct {
		// MaxMethodLength bounds the token scan for methods outside the
		// well-known set. The well-known ones are matched byte-by-byte and
		// are not affected.
		MaxMethodLength int
		// CustomMethods is an allow-list for tokens outside the well-known
		// set. A token not found here is rejected as not implemented.
		CustomMethods []string `test:"nullable"`
		// MaxTargetLength caps the request-target scan. The cap is enforced
		// while scanning, so an oversized target is rejected before any of
		// it is sliced or parsed.
		MaxTargetLength int
		// Mode selects how pedantic the request-target grammar is.
		Mode uri.Mode
		// RawTargetHeader, when enabled, prepends a Raw-Request-URI header
		// carrying the exact undecoded target bytes to every emitted
		// header sequence.
		RawTargetHeader bool
	}

	Headers struct {
		// Number is responsible for the maximal number of header entries
		// within a single message.
		Number HeadersNumber
		// Space limits the total amount of memory occupied by the header
		// section of a single message.
		Space          HeadersSpace
		MaxKeyLength   int
		MaxValueLength int
		// MaxEncodingTokens is a limit of how many transfer codings may be
		// listed for a single message.
		MaxEncodingTokens int
	}

	Body struct {
		// MaxSize describes the maximal size of a body that can be
		// processed, in any framing variant.
		MaxSize uint
	}
)

// Config holds restrictions and knobs shared by every connection's parser.
// It is read-only after construction and therefore safe to share.
type Config struct {
	RequestLine RequestLine
	Headers     Headers
	Body        Body
}

// Default returns a well-balanced default config. Modify the returned
// value instead of constructing Config manually, or zero-valued limits
// will reject everything.
func Default() *Config {
	return &Config{
		RequestLine: RequestLine{
			MaxMethodLength: 16,
			// allow at most 8kb of request target, which most web entities
			// out there consider tolerant already
			MaxTargetLength: 8 * 1024,
			Mode:            uri.Strict,
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 50,
			},
			Space: HeadersSpace{
				Default: 1 * 1024,
				Maximal: 16 * 1024, // there might be extremely long cookies
			},
			MaxKeyLength:      100,
			MaxValueLength:    8 * 1024,
			MaxEncodingTokens: 4, // 1 for chunked, leaving 3 content codings
		},
		Body: Body{
			MaxSize: 512 * 1024 * 1024, // 512 megabytes
		},
	}
}
