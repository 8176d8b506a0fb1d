package http1

import (
	"testing"

	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/headers"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/proto"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/internal/datastruct"

	"github.com/stretchr/testify/require"
)

const testMaxBody = 1 << 20

func framingHeaders(mutate func(*headers.Headers)) *headers.Headers {
	hdrs := headers.New()
	hdrs.HasHost = true
	mutate(hdrs)

	return hdrs
}

func TestDecideFraming(t *testing.T) {
	for _, tc := range []struct {
		name      string
		method    method.Method
		proto     proto.Proto
		mutate    func(*headers.Headers)
		available int
		want      http.Framing
		wantErr   error
	}{
		{
			name:   "no body headers",
			method: method.GET,
			proto:  proto.HTTP11,
			mutate: func(*headers.Headers) {},
			want:   http.Framing{Kind: http.FramingEmpty},
		},
		{
			name:   "explicit zero length",
			method: method.POST,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.HasContentLength = true
			},
			want: http.Framing{Kind: http.FramingEmpty},
		},
		{
			name:   "length fully available",
			method: method.POST,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.HasContentLength, h.ContentLength = true, 64
			},
			available: 64,
			want:      http.Framing{Kind: http.FramingStrict, Length: 64},
		},
		{
			name:   "length over-available",
			method: method.POST,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.HasContentLength, h.ContentLength = true, 64
			},
			available: 200,
			want:      http.Framing{Kind: http.FramingStrict, Length: 64},
		},
		{
			name:   "length partially available",
			method: method.POST,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.HasContentLength, h.ContentLength = true, 64
			},
			available: 63,
			want:      http.Framing{Kind: http.FramingFixedLength, Length: 64},
		},
		{
			name:   "length exceeds the body cap",
			method: method.POST,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.HasContentLength, h.ContentLength = true, testMaxBody+1
			},
			wantErr: status.ErrBodyTooLarge,
		},
		{
			name:   "chunked",
			method: method.POST,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.TransferEncoding, h.Chunked = []string{"chunked"}, true
			},
			want: http.Framing{Kind: http.FramingChunked},
		},
		{
			name:   "chunked together with a length",
			method: method.POST,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.TransferEncoding, h.Chunked = []string{"chunked"}, true
				h.HasContentLength, h.ContentLength = true, 5
			},
			wantErr: status.ErrConflictingFraming,
		},
		{
			name:   "opaque final coding falls back to length",
			method: method.POST,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.TransferEncoding = []string{"gzip"}
				h.HasContentLength, h.ContentLength = true, 8
			},
			available: 8,
			want:      http.Framing{Kind: http.FramingStrict, Length: 8},
		},
		{
			name:   "length on a bodiless method",
			method: method.HEAD,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.HasContentLength, h.ContentLength = true, 5
			},
			wantErr: status.ErrUnprocessableEntity,
		},
		{
			name:   "chunked on a bodiless method",
			method: method.CONNECT,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.TransferEncoding, h.Chunked = []string{"chunked"}, true
			},
			wantErr: status.ErrUnprocessableEntity,
		},
		{
			name:   "zero length on a bodiless method is fine",
			method: method.HEAD,
			proto:  proto.HTTP11,
			mutate: func(h *headers.Headers) {
				h.HasContentLength = true
			},
			want: http.Framing{Kind: http.FramingEmpty},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			hdrs := framingHeaders(tc.mutate)
			framing, err := decideFraming(tc.method, tc.proto, hdrs, tc.available, testMaxBody)

			if tc.wantErr != nil {
				require.Equal(t, tc.wantErr, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, framing)
		})
	}
}

func TestHostRequirement(t *testing.T) {
	bare := headers.New()

	_, err := decideFraming(method.GET, proto.HTTP11, bare, 0, testMaxBody)
	require.Equal(t, status.ErrMissingHost, err)

	framing, err := decideFraming(method.GET, proto.HTTP10, bare, 0, testMaxBody)
	require.NoError(t, err)
	require.Equal(t, http.FramingEmpty, framing.Kind)
}

func TestStripChunked(t *testing.T) {
	t.Run("sole coding removes the header", func(t *testing.T) {
		hdrs := headers.New()
		hdrs.Add("Host", "localhost")
		hdrs.Add("Transfer-Encoding", "chunked")
		hdrs.TransferEncoding, hdrs.Chunked = []string{"chunked"}, true

		stripChunked(hdrs)

		require.False(t, hdrs.Has("Transfer-Encoding"))
		require.Empty(t, hdrs.TransferEncoding)
		require.False(t, hdrs.Chunked)
	})

	t.Run("remaining codings keep their wire position", func(t *testing.T) {
		hdrs := headers.New()
		hdrs.Add("Host", "localhost")
		hdrs.Add("Transfer-Encoding", "gzip, br, chunked")
		hdrs.Add("Accept", "any")
		hdrs.TransferEncoding, hdrs.Chunked = []string{"gzip", "br", "chunked"}, true

		stripChunked(hdrs)

		require.Equal(t, []datastruct.Pair{
			{Key: "Host", Value: "localhost"},
			{Key: "Transfer-Encoding", Value: "gzip, br"},
			{Key: "Accept", Value: "any"},
		}, hdrs.Unwrap())
		require.Equal(t, []string{"gzip", "br"}, hdrs.TransferEncoding)
	})

	t.Run("split coding entries collapse into the first", func(t *testing.T) {
		hdrs := headers.New()
		hdrs.Add("Transfer-Encoding", "gzip")
		hdrs.Add("Host", "localhost")
		hdrs.Add("Transfer-Encoding", "chunked")
		hdrs.TransferEncoding, hdrs.Chunked = []string{"gzip", "chunked"}, true

		stripChunked(hdrs)

		require.Equal(t, []datastruct.Pair{
			{Key: "Transfer-Encoding", Value: "gzip"},
			{Key: "Host", Value: "localhost"},
		}, hdrs.Unwrap())
	})
}

func TestFramingKindString(t *testing.T) {
	require.Equal(t, "empty", http.FramingEmpty.String())
	require.Equal(t, "strict", http.FramingStrict.String())
	require.Equal(t, "fixed-length", http.FramingFixedLength.String())
	require.Equal(t, "chunked", http.FramingChunked.String())
}
