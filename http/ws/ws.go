package ws

import (
	"crypto/sha1"
	"encoding/base64"
	"strings"

	"github.com/lumen-web/lumen/http/headers"

	"github.com/indigo-web/utils/strcomp"
)

// guid is the fixed RFC 6455 key-hashing suffix.
const guid = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

// AcceptHeader is the synthetic header prepended to the emitted header
// sequence of a recognized upgrade request. Its value is what the
// application must echo back in the 101 response.
const AcceptHeader = "Sec-WebSocket-Accept"

// Detect recognizes a WebSocket handshake in a finished GET header
// section. On success it returns the header pair to prepend; otherwise
// ok is false and the request proceeds as plain HTTP.
func Detect(hdrs *headers.Headers, hostPresent bool) (key, value string, ok bool) {
	if !hostPresent ||
		!strcomp.EqualFold(hdrs.Upgrade, "websocket") ||
		!connectionRequestsUpgrade(hdrs.Connection) {
		return "", "", false
	}

	if hdrs.Value("sec-websocket-version") != "13" {
		return "", "", false
	}

	nonce := hdrs.Value("sec-websocket-key")
	if len(nonce) == 0 {
		return "", "", false
	}

	return AcceptHeader, accept(nonce), true
}

func accept(nonce string) string {
	digest := sha1.Sum([]byte(nonce + guid))
	return base64.StdEncoding.EncodeToString(digest[:])
}

// connectionRequestsUpgrade looks for the "upgrade" token in a possibly
// comma-separated Connection header value.
func connectionRequestsUpgrade(value string) bool {
	for len(value) > 0 {
		var token string
		if comma := strings.IndexByte(value, ','); comma == -1 {
			token, value = value, ""
		} else {
			token, value = value[:comma], value[comma+1:]
		}

		if strcomp.EqualFold(strings.TrimSpace(token), "upgrade") {
			return true
		}
	}

	return false
}
