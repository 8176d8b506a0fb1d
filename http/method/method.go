package method

type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH
	// Custom marks a token that is absent from the well-known set above and
	// was admitted through the configured custom-method table instead. The
	// token itself travels separately, as a string.
	Custom

	// Count is the number of well-known methods, Unknown and Custom excluded.
	Count = int(Custom) - 1
)

// List contains all the well-known HTTP methods, sorted by their integer value.
var List = []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case HEAD:
		return "HEAD"
	case POST:
		return "POST"
	case PUT:
		return "PUT"
	case DELETE:
		return "DELETE"
	case CONNECT:
		return "CONNECT"
	case OPTIONS:
		return "OPTIONS"
	case TRACE:
		return "TRACE"
	case PATCH:
		return "PATCH"
	case Custom:
		return "<custom>"
	default:
		return ""
	}
}

func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		} else if str == "TRACE" {
			return TRACE
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "CONNECT" {
			return CONNECT
		} else if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return Unknown
}

// DisallowsBody reports whether an entity body on a request with this
// method renders the message unprocessable. Custom methods always accept
// a body, as nothing is known about their semantics.
func DisallowsBody(m Method) bool {
	switch m {
	case HEAD, CONNECT, TRACE:
		return true
	default:
		return false
	}
}
