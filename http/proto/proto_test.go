package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want Proto
	}{
		{"HTTP/1.0", HTTP10},
		{"HTTP/1.1", HTTP11},
		{"HTTP/2.0", Unknown},
		{"HTTP/0.9", Unknown},
		{"HTTP/1.2", Unknown},
		{"HTTP/1", Unknown},
		{"HTTP/1.1.1", Unknown},
		{"HTTPS/1.", Unknown},
		{"HTTP-1.1", Unknown},
		{"http/1.1", Unknown},
		{"", Unknown},
	} {
		require.Equal(t, tc.want, FromBytes([]byte(tc.raw)), tc.raw)
	}
}

func TestParse(t *testing.T) {
	require.Equal(t, HTTP10, Parse(1, 0))
	require.Equal(t, HTTP11, Parse(1, 1))
	require.Equal(t, Unknown, Parse(2, 0))
	require.Equal(t, Unknown, Parse(255, 255))
}

func TestString(t *testing.T) {
	require.Equal(t, "HTTP/1.0", HTTP10.String())
	require.Equal(t, "HTTP/1.1", HTTP11.String())
	require.Empty(t, Unknown.String())
}

func TestMasks(t *testing.T) {
	require.NotZero(t, HTTP1&HTTP10)
	require.NotZero(t, HTTP1&HTTP11)
}
