package datastruct

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyValue(t *testing.T) {
	t.Run("order and duplicates survive", func(t *testing.T) {
		kv := NewKeyValue().
			Add("Accept", "one").
			Add("Host", "localhost").
			Add("Accept", "two")

		require.Equal(t, []Pair{
			{"Accept", "one"},
			{"Host", "localhost"},
			{"Accept", "two"},
		}, kv.Unwrap())
	})

	t.Run("lookups are case-insensitive", func(t *testing.T) {
		kv := NewKeyValue().Add("Content-Type", "text/html")

		require.Equal(t, "text/html", kv.Value("content-type"))
		require.True(t, kv.Has("CONTENT-TYPE"))
		require.Equal(t, "fallback", kv.ValueOr("missing", "fallback"))
	})

	t.Run("value returns the first entry", func(t *testing.T) {
		kv := NewKeyValue().Add("Accept", "one").Add("Accept", "two")

		require.Equal(t, "one", kv.Value("accept"))
		require.Equal(t, []string{"one", "two"}, kv.Values("accept"))
	})

	t.Run("prepend", func(t *testing.T) {
		kv := NewKeyValue().Add("Host", "localhost").Add("Accept", "any")
		kv.Prepend("Raw-Request-URI", "/index")

		require.Equal(t, []Pair{
			{"Raw-Request-URI", "/index"},
			{"Host", "localhost"},
			{"Accept", "any"},
		}, kv.Unwrap())
	})

	t.Run("prepend into empty", func(t *testing.T) {
		kv := NewKeyValue()
		kv.Prepend("Only", "entry")

		require.Equal(t, []Pair{{"Only", "entry"}}, kv.Unwrap())
	})

	t.Run("replace keeps the first entry's position", func(t *testing.T) {
		kv := NewKeyValue().
			Add("A", "1").
			Add("Target", "old").
			Add("B", "2").
			Add("target", "older").
			Add("C", "3")

		kv.Replace("Target", "new")

		require.Equal(t, []Pair{
			{"A", "1"},
			{"Target", "new"},
			{"B", "2"},
			{"C", "3"},
		}, kv.Unwrap())
	})

	t.Run("replace appends when the key is absent", func(t *testing.T) {
		kv := NewKeyValue().Add("A", "1")
		kv.Replace("B", "2")

		require.Equal(t, []Pair{{"A", "1"}, {"B", "2"}}, kv.Unwrap())
	})

	t.Run("delete keeps relative order", func(t *testing.T) {
		kv := NewKeyValue().
			Add("A", "1").
			Add("Victim", "x").
			Add("B", "2").
			Add("victim", "y").
			Add("C", "3")

		kv.Delete("Victim")

		require.Equal(t, []Pair{{"A", "1"}, {"B", "2"}, {"C", "3"}}, kv.Unwrap())
	})

	t.Run("keys are unique", func(t *testing.T) {
		kv := NewKeyValue().Add("Accept", "one").Add("accept", "two").Add("Host", "h")

		require.Equal(t, []string{"Accept", "Host"}, kv.Keys())
	})

	t.Run("clear keeps nothing", func(t *testing.T) {
		kv := NewKeyValue().Add("Host", "localhost")
		kv.Clear()

		require.Zero(t, kv.Len())
		require.False(t, kv.Has("Host"))
	})

	t.Run("iterator walks all pairs in order", func(t *testing.T) {
		kv := NewKeyValue().Add("A", "1").Add("B", "2").Add("A", "3")

		var got []Pair
		it := kv.Iter()
		for {
			pair, ok := it.Next()
			if !ok {
				break
			}

			got = append(got, pair)
		}

		require.Equal(t, []Pair{{"A", "1"}, {"B", "2"}, {"A", "3"}}, got)
	})
}
