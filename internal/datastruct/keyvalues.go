package datastruct

import (
	"github.com/indigo-web/iter"
	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// KeyValue is an ordered storage of string-string pairs. It backs the
// request header sequence, where both the order of entries and duplicate
// keys must survive parsing untouched.
type KeyValue struct {
	pairs      []Pair
	uniqueBuff []string
	valuesBuff []string
}

// NewKeyValuePreAlloc returns an instance of KeyValue with pre-allocated
// underlying storage.
func NewKeyValuePreAlloc(n int) *KeyValue {
	return &KeyValue{
		pairs: make([]Pair, 0, n),
	}
}

func NewKeyValue() *KeyValue {
	return NewKeyValuePreAlloc(0)
}

// NewKeyValueFromMap returns a new instance with already inserted values
// from the given map. Note: as maps are unordered, the resulting entry
// order is unspecified.
func NewKeyValueFromMap(m map[string][]string) *KeyValue {
	kv := NewKeyValuePreAlloc(len(m))

	for key, values := range m {
		for _, value := range values {
			kv.Add(key, value)
		}
	}

	return kv
}

// Add appends a new pair of key and value.
func (k *KeyValue) Add(key, value string) *KeyValue {
	k.pairs = append(k.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return k
}

// Prepend inserts the pair before all the existing entries.
func (k *KeyValue) Prepend(key, value string) *KeyValue {
	k.pairs = append(k.pairs, Pair{})
	copy(k.pairs[1:], k.pairs)
	k.pairs[0] = Pair{Key: key, Value: value}
	return k
}

// Value returns the first value, corresponding to the key. Otherwise,
// empty string is returned.
func (k *KeyValue) Value(key string) string {
	return k.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or the
// passed fallback.
func (k *KeyValue) ValueOr(key, or string) string {
	value, found := k.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value corresponding to the key and a bool, indicating
// whether the key exists at all.
func (k *KeyValue) Get(key string) (string, bool) {
	for _, pair := range k.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Values returns all values by the key. Returns nil if the key doesn't exist.
//
// WARNING: calling it twice will override values, returned by the first
// call. Consider copying the returned slice for safe use.
func (k *KeyValue) Values(key string) (values []string) {
	k.valuesBuff = k.valuesBuff[:0]

	for _, pair := range k.pairs {
		if strcomp.EqualFold(pair.Key, key) {
			k.valuesBuff = append(k.valuesBuff, pair.Value)
		}
	}

	if len(k.valuesBuff) == 0 {
		return nil
	}

	return k.valuesBuff
}

// Keys returns all unique presented keys.
//
// WARNING: calling it twice will override values, returned by the first
// call. Consider copying the returned slice for safe use.
func (k *KeyValue) Keys() []string {
	k.uniqueBuff = k.uniqueBuff[:0]

	for _, pair := range k.pairs {
		if contains(k.uniqueBuff, pair.Key) {
			continue
		}

		k.uniqueBuff = append(k.uniqueBuff, pair.Key)
	}

	return k.uniqueBuff
}

// Has indicates, whether there's an entry of the key.
func (k *KeyValue) Has(key string) bool {
	_, found := k.Get(key)
	return found
}

// Replace substitutes the value of the first entry of the key in place,
// removing any further entries of it. The sequence order is preserved. If
// no entry of the key exists, the pair is appended.
func (k *KeyValue) Replace(key, value string) {
	replaced := false
	kept := k.pairs[:0]

	for _, pair := range k.pairs {
		if strcomp.EqualFold(pair.Key, key) {
			if replaced {
				continue
			}

			pair.Value = value
			replaced = true
		}

		kept = append(kept, pair)
	}

	if !replaced {
		kept = append(kept, Pair{Key: key, Value: value})
	}

	k.pairs = kept
}

// Delete removes all the entries of the key, preserving the relative
// order of the rest.
func (k *KeyValue) Delete(key string) {
	kept := k.pairs[:0]

	for _, pair := range k.pairs {
		if !strcomp.EqualFold(pair.Key, key) {
			kept = append(kept, pair)
		}
	}

	k.pairs = kept
}

// Iter returns an iterator over the pairs.
func (k *KeyValue) Iter() iter.Iterator[Pair] {
	return iter.Slice(k.pairs)
}

// Len returns the number of stored entries.
func (k *KeyValue) Len() int {
	return len(k.pairs)
}

// Unwrap reveals the underlying entries. Mostly useful for sequential
// zero-cost traversal.
func (k *KeyValue) Unwrap() []Pair {
	return k.pairs
}

// Clear removes all the entries. The allocated space is kept.
func (k *KeyValue) Clear() {
	k.pairs = k.pairs[:0]
}

func contains(collection []string, key string) bool {
	for _, element := range collection {
		if strcomp.EqualFold(element, key) {
			return true
		}
	}

	return false
}
