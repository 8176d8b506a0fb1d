package http1

import (
	"strings"

	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/headers"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
)

// decideFraming chooses how the entity body of the current message is
// delimited. It is a pure function of the method, the header set and the
// number of entity bytes already buffered past the header terminator:
// re-evaluating it with the same inputs always yields the same variant.
//
// First matching rule wins:
//
//  1. an HTTP/1.1 message without a Host header is rejected outright;
//  2. without Transfer-Encoding, Content-Length (absent meaning zero)
//     picks empty, strict or fixed-length framing;
//  3. Transfer-Encoding on a bodiless method is unprocessable;
//  4. a final "chunked" coding selects chunked framing, but never
//     together with Content-Length: that combination desynchronizes
//     framing between parsers and is rejected unconditionally;
//  5. a final coding other than "chunked" says nothing about where the
//     message ends and is treated as an opaque content coding: framing
//     falls back to Content-Length as if Transfer-Encoding were absent.
func decideFraming(
	m method.Method, pr proto.Proto, hdrs *headers.Headers, available int, maxBody uint,
) (http.Framing, error) {
	if pr != proto.HTTP10 && !hdrs.HasHost {
		return http.Framing{}, status.ErrMissingHost
	}

	if len(hdrs.TransferEncoding) == 0 {
		return lengthFraming(m, hdrs, available, maxBody)
	}

	if method.DisallowsBody(m) {
		return http.Framing{}, status.ErrUnprocessableEntity
	}

	if hdrs.Chunked {
		if hdrs.HasContentLength {
			return http.Framing{}, status.ErrConflictingFraming
		}

		return http.Framing{Kind: http.FramingChunked}, nil
	}

	return lengthFraming(m, hdrs, available, maxBody)
}

func lengthFraming(
	m method.Method, hdrs *headers.Headers, available int, maxBody uint,
) (http.Framing, error) {
	var length int
	if hdrs.HasContentLength {
		length = hdrs.ContentLength
	}

	switch {
	case length == 0:
		return http.Framing{Kind: http.FramingEmpty}, nil
	case method.DisallowsBody(m):
		return http.Framing{}, status.ErrUnprocessableEntity
	case uint(length) > maxBody:
		return http.Framing{}, status.ErrBodyTooLarge
	case length <= available:
		return http.Framing{Kind: http.FramingStrict, Length: length}, nil
	default:
		return http.Framing{Kind: http.FramingFixedLength, Length: length}, nil
	}
}

// stripChunked removes the final "chunked" token from the emitted header
// sequence: it is consumed by framing and means nothing to the
// application. Remaining codings, if any, are re-joined into a single
// Transfer-Encoding entry at the original wire position.
func stripChunked(hdrs *headers.Headers) {
	hdrs.TransferEncoding = hdrs.TransferEncoding[:len(hdrs.TransferEncoding)-1]
	hdrs.Chunked = false

	if len(hdrs.TransferEncoding) == 0 {
		hdrs.Delete("Transfer-Encoding")
		return
	}

	hdrs.Replace("Transfer-Encoding", strings.Join(hdrs.TransferEncoding, ", "))
}
