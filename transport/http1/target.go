package http1

import (
	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/http/uri"
	"github.com/lumen-web/lumen/transport"
)

// parseTarget scans the request target up to the next space and hands the
// captured range to the URI grammar. The MaxTargetLength cap is enforced
// during the scan itself: an oversized target is rejected without the
// parser ever looking past the cap, and before any of it is sliced or
// handed to the grammar.
func parseTarget(
	c cursor, cfg *config.RequestLine, grammar transport.TargetParser,
) (t uri.Target, raw []byte, out cursor, err error) {
	rest := c.rest()

	for i := 0; i < len(rest); i++ {
		char := rest[i]

		switch {
		case char == ' ':
			if i == 0 {
				return t, nil, c, status.ErrBadRequest
			}

			raw = rest[:i]
			t, err = grammar.Parse(raw, cfg.Mode)

			return t, raw, c.advance(i + 1), err
		case char == '\r' || char == '\n':
			// a request line ending right after the target is an HTTP/0.9
			// simple request, which this transport does not speak
			return t, nil, c, status.ErrUnsupportedProtocol
		case char < ' ' || char == 0x7f:
			return t, nil, c, status.ErrBadRequest
		case i >= cfg.MaxTargetLength:
			return t, nil, c, status.ErrURITooLong
		}
	}

	return t, nil, c, transport.ErrMoreData
}
