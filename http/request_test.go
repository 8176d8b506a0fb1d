package http

import (
	"testing"

	"github.com/lumen-web/lumen/http/headers"
	"github.com/lumen-web/lumen/http/method"
	"github.com/lumen-web/lumen/http/status"

	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	t.Run("inline body", func(t *testing.T) {
		req := &Request{
			Headers: headers.New(),
			Framing: Framing{Kind: FramingStrict, Length: 17},
			Body:    []byte(`{"hello":"world"}`),
		}
		req.Headers.ContentType = "application/json"

		var model struct {
			Hello string `json:"hello"`
		}
		require.NoError(t, req.JSON(&model))
		require.Equal(t, "world", model.Hello)
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := &Request{
			Headers: headers.New(),
			Framing: Framing{Kind: FramingStrict},
			Body:    []byte(`{}`),
		}
		req.Headers.ContentType = "text/html"

		var model map[string]any
		require.Equal(t, status.ErrUnsupportedMediaType, req.JSON(&model))
	})

	t.Run("streamed entity", func(t *testing.T) {
		req := &Request{
			Headers: headers.New(),
			Framing: Framing{Kind: FramingChunked},
		}
		req.Headers.ContentType = "application/json"

		var model map[string]any
		require.Equal(t, status.ErrUnprocessableEntity, req.JSON(&model))
	})
}

func TestReset(t *testing.T) {
	hdrs := headers.New()
	hdrs.Add("Host", "localhost")
	hdrs.HasHost = true

	req := &Request{
		Method:             method.POST,
		RawTarget:          "/somewhere",
		Headers:            hdrs,
		ContentLength:      42,
		Framing:            Framing{Kind: FramingFixedLength, Length: 42},
		ExpectsContinue:    true,
		CloseAfterResponse: true,
	}

	req.Reset()

	require.Equal(t, method.Unknown, req.Method)
	require.Empty(t, req.RawTarget)
	require.Zero(t, req.ContentLength)
	require.Equal(t, Framing{}, req.Framing)
	require.False(t, req.ExpectsContinue)
	require.False(t, req.CloseAfterResponse)

	// the header storage survives resets, emptied
	require.Same(t, hdrs, req.Headers)
	require.Zero(t, hdrs.Len())
	require.False(t, hdrs.HasHost)
}
