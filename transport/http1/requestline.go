package http1

import (
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/transport"
)

// protoTokenLimit bounds the protocol scan: the token itself plus an
// optional carriage return. Anything longer cannot be a protocol this
// transport speaks, no matter what bytes follow.
const protoTokenLimit = len("HTTP/x.x") + 1

// parseProto consumes the trailing token of the request line together
// with its line terminator. Both CRLF and a bare LF are accepted.
func parseProto(c cursor) (proto.Proto, cursor, error) {
	rest := c.rest()

	for i := 0; i < len(rest); i++ {
		if rest[i] == '\n' {
			tok := rest[:i]
			if len(tok) > 0 && tok[len(tok)-1] == '\r' {
				tok = tok[:len(tok)-1]
			}

			pr := proto.FromBytes(tok)
			if pr == proto.Unknown {
				return proto.Unknown, c, status.ErrUnsupportedProtocol
			}

			return pr, c.advance(i + 1), nil
		}

		if i >= protoTokenLimit {
			return proto.Unknown, c, status.ErrUnsupportedProtocol
		}
	}

	return proto.Unknown, c, transport.ErrMoreData
}
