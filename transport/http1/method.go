package http1

import (
	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/transport"

	"github.com/indigo-web/utils/uf"
)

// tlsHandshakeByte is the first octet of a TLS ClientHello.
const tlsHandshakeByte = 0x16

// parseMethod recognizes the request method at the cursor. Well-known
// methods are matched byte-by-byte, confirmed by the mandatory following
// space (so that GETFOO is not mistaken for GET). Everything else is
// scanned as an arbitrary token, bounded by MaxMethodLength, and looked
// up in the configured allow-list.
//
// virgin is set when not a single message was parsed on this connection
// yet: only then a leading TLS handshake byte gets its dedicated
// diagnostic instead of a generic malformed-method error.
func parseMethod(c cursor, cfg *config.RequestLine, virgin bool) (method.Method, string, cursor, error) {
	if c.eof() {
		return method.Unknown, "", c, transport.ErrMoreData
	}

	if virgin && c.head() == tlsHandshakeByte {
		return method.Unknown, "", c, status.ErrTLSOverPlaintext
	}

	rest := c.rest()

	for _, m := range method.List {
		tok := m.String()
		matched, complete := comparePrefix(rest, tok)
		if !matched {
			continue
		}

		if !complete || len(rest) == len(tok) {
			// either the input ran out mid-token, or the token matched
			// fully but the byte after it is not buffered yet
			return method.Unknown, "", c, transport.ErrMoreData
		}

		if rest[len(tok)] == ' ' {
			return m, "", c.advance(len(tok) + 1), nil
		}

		// a well-known prefix continued by more token bytes, e.g. GETFOO
		break
	}

	return parseCustomMethod(c, cfg)
}

// comparePrefix reports whether rest is still compatible with tok:
// matched means no mismatching byte was seen, complete means the whole
// token was present.
func comparePrefix(rest []byte, tok string) (matched, complete bool) {
	for i := 0; i < len(tok); i++ {
		if i == len(rest) {
			return true, false
		}

		if rest[i] != tok[i] {
			return false, false
		}
	}

	return true, true
}

func parseCustomMethod(c cursor, cfg *config.RequestLine) (method.Method, string, cursor, error) {
	rest := c.rest()

	for i := 0; i < len(rest); i++ {
		char := rest[i]
		if char == ' ' {
			if i == 0 {
				return method.Unknown, "", c, status.ErrBadRequest
			}

			token := uf.B2S(rest[:i])
			for _, allowed := range cfg.CustomMethods {
				// methods are case-sensitive tokens
				if allowed == token {
					return method.Custom, string(rest[:i]), c.advance(i + 1), nil
				}
			}

			return method.Unknown, "", c, status.ErrMethodNotImplemented
		}

		if i >= cfg.MaxMethodLength {
			return method.Unknown, "", c, status.ErrTooLongRequestLine
		}

		if !isTokenChar(char) {
			return method.Unknown, "", c, status.ErrBadRequest
		}
	}

	return method.Unknown, "", c, transport.ErrMoreData
}

// isTokenChar reports whether char may appear in an RFC 9110 token.
func isTokenChar(char byte) bool {
	switch {
	case char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z',
		char >= '0' && char <= '9':
		return true
	}

	switch char {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	default:
		return false
	}
}
