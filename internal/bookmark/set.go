package bookmark

import "sort"

// Set is a user's bookmark state: serialized keys, no order, no duplicates.
// Functions in this package never modify a Set they receive.
type Set map[string]struct{}

// NewSet builds a set from serialized keys. Entries are stored as given,
// including ones that do not decode, so that persisting the set back does
// not drop data this version cannot read.
func NewSet(raws ...string) Set {
	s := make(Set, len(raws))
	for _, raw := range raws {
		if raw == "" {
			continue
		}
		s[raw] = struct{}{}
	}
	return s
}

// SetFromValue builds a set from a list field read from a document store.
// Non-string elements are skipped.
func SetFromValue(v any) Set {
	switch list := v.(type) {
	case []string:
		return NewSet(list...)
	case []any:
		s := make(Set, len(list))
		for _, item := range list {
			if raw, ok := item.(string); ok && raw != "" {
				s[raw] = struct{}{}
			}
		}
		return s
	default:
		return Set{}
	}
}

// Strings returns the serialized keys sorted, ready to be persisted.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for raw := range s {
		out = append(out, raw)
	}
	sort.Strings(out)
	return out
}

// Keys returns the valid keys of the set in serialized order.
func (s Set) Keys() []Key {
	return DecodeAll(s.Strings())
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for raw := range s {
		c[raw] = struct{}{}
	}
	return c
}

// IsMember reports whether the encoded key is in s.
func IsMember(k Key, s Set) bool {
	raw, ok := Encode(k)
	if !ok {
		return false
	}
	_, found := s[raw]
	return found
}

// Toggle returns a copy of s with k inserted if it was absent or removed if
// it was present, along with k's membership in the result. An unencodable
// key returns an unchanged copy.
func Toggle(k Key, s Set) (Set, bool) {
	next := s.Clone()

	raw, ok := Encode(k)
	if !ok {
		return next, false
	}

	if _, found := next[raw]; found {
		delete(next, raw)
		return next, false
	}

	next[raw] = struct{}{}
	return next, true
}
