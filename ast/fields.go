package ast

import (
	"reflect"
	"strings"
	"sync"
)

var (
	nodeIface = reflect.TypeOf((*Node)(nil)).Elem()
	spanType  = reflect.TypeOf(Span{})
)

// field describes one ESTree property of a node struct.
type field struct {
	index     int
	name      string
	omitEmpty bool
	omitNil   bool // a nil slice is absent, an empty one is []
	child     bool // holds a node or a slice of nodes
}

var fieldCache sync.Map // reflect.Type -> []field

func fieldsOf(t reflect.Type) []field {
	if fs, ok := fieldCache.Load(t); ok {
		return fs.([]field)
	}
	var fs []field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type == spanType {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" || tag == "" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		fs = append(fs, field{
			index:     i,
			name:      name,
			omitEmpty: opts == "omitempty",
			omitNil:   opts == "omitnil",
			child:     holdsNode(f.Type),
		})
	}
	fieldCache.Store(t, fs)
	return fs
}

func holdsNode(t reflect.Type) bool {
	if t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t.Implements(nodeIface)
}

// Children returns the direct child nodes of n in field order, skipping
// nil entries such as array holes.
func Children(n Node) []Node {
	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return nil
	}
	s := v.Elem()
	var out []Node
	for _, f := range fieldsOf(s.Type()) {
		if !f.child {
			continue
		}
		fv := s.Field(f.index)
		if fv.Kind() == reflect.Slice {
			for i := 0; i < fv.Len(); i++ {
				if c := asNode(fv.Index(i)); c != nil {
					out = append(out, c)
				}
			}
			continue
		}
		if c := asNode(fv); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func asNode(v reflect.Value) Node {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return nil
	}
	n, _ := v.Interface().(Node)
	return n
}

// Walk traverses the tree rooted at n in depth-first order. Children of a
// node are skipped when fn returns false for it.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}
