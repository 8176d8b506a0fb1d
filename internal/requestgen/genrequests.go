package requestgen

import (
	"strconv"
	"strings"

	"github.com/lumen-web/lumen/http/headers"
)

func Headers(n int) *headers.Headers {
	hdrs := headers.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Add("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), strings.Repeat("b", 100))
	}

	hdrs.Add("Host", "localhost")

	return hdrs
}

func HeadersBlock(hdrs *headers.Headers) (buff []byte) {
	it := hdrs.Iter()

	for {
		pair, ok := it.Next()
		if !ok {
			return buff
		}

		buff = append(buff, pair.Key+": "+pair.Value+"\r\n"...)
	}
}

func Generate(target string, hdrs *headers.Headers) (request []byte) {
	request = append(request, "GET /"+target+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}
