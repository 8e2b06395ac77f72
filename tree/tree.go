// Package tree provides an in-memory implementation of the configuration
// tree that libopts.Resolve reads specifications from and writes resolved
// values into.
package tree

import "strings"

// key is one node: a value plus its metadata, both addressed by absolute
// path.
type key struct {
	value string
	meta  map[string]string
	order []string // metadata insertion order.
}

// KeySet is a namespaced key/value store with per-key string metadata. It
// keeps an insertion-order slice of paths alongside its lookup map so that
// namespace iteration is stable without a sort on every call.
type KeySet struct {
	m    map[string]*key
	keys []string
}

// New returns an empty KeySet.
func New() *KeySet {
	return &KeySet{m: make(map[string]*key)}
}

func (ks *KeySet) entry(path string) *key {
	k, ok := ks.m[path]
	if !ok {
		k = &key{meta: make(map[string]string)}
		ks.m[path] = k
		ks.keys = append(ks.keys, path)
	}
	return k
}

// Keys returns the absolute paths of every key under namespace, in
// insertion order.
func (ks *KeySet) Keys(namespace string) []string {
	prefix := namespace + "/"
	var out []string
	for _, p := range ks.keys {
		if p == namespace || strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	return out
}

// Has reports whether a key exists at the absolute path.
func (ks *KeySet) Has(path string) bool {
	_, ok := ks.m[path]
	return ok
}

// Value returns a key's string value.
func (ks *KeySet) Value(path string) (string, bool) {
	k, ok := ks.m[path]
	if !ok {
		return "", false
	}
	return k.value, true
}

// SetValue creates the key at path if necessary and sets its value.
func (ks *KeySet) SetValue(path, value string) {
	ks.entry(path).value = value
}

// Meta returns the value of a named metadata entry on the key at path.
func (ks *KeySet) Meta(path, name string) (string, bool) {
	k, ok := ks.m[path]
	if !ok {
		return "", false
	}
	v, ok := k.meta[name]
	return v, ok
}

// SetMeta creates the key at path if necessary and sets a metadata entry.
func (ks *KeySet) SetMeta(path, name, value string) {
	k := ks.entry(path)
	if _, exists := k.meta[name]; !exists {
		k.order = append(k.order, name)
	}
	k.meta[name] = value
}

// Dump renders every key under namespace as "path = value" lines, in
// insertion order, for debugging.
func (ks *KeySet) Dump(namespace string) string {
	var b strings.Builder
	for _, path := range ks.Keys(namespace) {
		b.WriteString(path)
		b.WriteString(" = ")
		b.WriteString(ks.m[path].value)
		b.WriteString("\n")
	}
	return b.String()
}
