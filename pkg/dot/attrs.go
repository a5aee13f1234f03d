package dot

import (
	"maps"
	"slices"
	"strings"
)

// Attr is a single key=value attribute. Keys and values are quoted when
// rendered unless the attribute was built with [Raw].
type Attr struct {
	Key   string
	Value string

	raw bool
}

// Raw returns an attribute whose value is inserted into the source
// verbatim, without quoting. Use it to inject attribute text that is
// already escaped.
func Raw(key, value string) Attr {
	return Attr{Key: key, Value: value, raw: true}
}

// Label returns a label attribute. By convention it is passed first in
// an attribute list.
func Label(value string) Attr {
	return Attr{Key: "label", Value: value}
}

// Attrs is an ordered attribute list. Insertion order is preserved when
// rendering; use [Sorted] to convert an unordered map deterministically.
type Attrs []Attr

// Set updates the value for key in place, or appends a new attribute
// when the key is not present.
func (a *Attrs) Set(key, value string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i] = Attr{Key: key, Value: value}
			return
		}
	}
	*a = append(*a, Attr{Key: key, Value: value})
}

// Get returns the value for key and whether it is present.
func (a Attrs) Get(key string) (string, bool) {
	for _, at := range a {
		if at.Key == key {
			return at.Value, true
		}
	}
	return "", false
}

// Clone returns a copy of a that shares no storage with it.
func (a Attrs) Clone() Attrs {
	return slices.Clone(a)
}

// Sorted converts an unordered map into an [Attrs] list in ascending key
// order, so the same logical input always renders the same source.
func Sorted(m map[string]string) Attrs {
	out := make(Attrs, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, Attr{Key: k, Value: m[k]})
	}
	return out
}

// aList renders attrs as space-separated key=value pairs.
func aList(attrs Attrs) string {
	if len(attrs) == 0 {
		return ""
	}
	pairs := make([]string, len(attrs))
	for i, at := range attrs {
		v := at.Value
		if !at.raw {
			v = Quote(v)
		}
		pairs[i] = Quote(at.Key) + "=" + v
	}
	return strings.Join(pairs, " ")
}

// attrList renders attrs as a bracketed fragment with its leading
// separator space, or "" when there is nothing to render. Callers embed
// the result directly after the statement target.
func attrList(attrs Attrs) string {
	content := aList(attrs)
	if content == "" {
		return ""
	}
	return " [" + content + "]"
}
