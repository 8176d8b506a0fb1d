package mime

import "strings"

type MIME = string

const (
	OctetStream    MIME = "application/octet-stream"
	Plain          MIME = "text/plain"
	HTML           MIME = "text/html"
	XML            MIME = "text/xml"
	JSON           MIME = "application/json"
	FormUrlencoded MIME = "application/x-www-form-urlencoded"
	Multipart      MIME = "multipart/form-data"
)

// Complies returns whether two MIMEs are compatible. Empty MIME is
// considered compatible with any other MIME.
func Complies(mime MIME, with string) bool {
	// get rid of parameters if any
	if semicolon := strings.IndexByte(with, ';'); semicolon != -1 {
		with = strings.TrimSpace(with[:semicolon])
	}

	return len(with) == 0 || with == mime
}
