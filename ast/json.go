package ast

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/t14raptor/go-estree/token"
)

var tokenType = reflect.TypeOf(token.Token(0))

// Marshal encodes a node as ESTree JSON. The "type" tag comes first and is
// followed by the position fields and the node's own properties in
// declaration order.
func Marshal(n Node) ([]byte, error) {
	var e encoder
	if err := e.value(reflect.ValueOf(n)); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (n *Program) MarshalJSON() ([]byte, error) {
	return Marshal(n)
}

type encoder struct {
	bytes.Buffer
}

func (e *encoder) node(n Node) error {
	v := reflect.ValueOf(n).Elem()
	sp := n.NodeSpan()

	e.WriteString(`{"type":`)
	e.WriteString(strconv.Quote(n.Type()))
	e.WriteString(`,"start":`)
	e.WriteString(strconv.Itoa(int(sp.Start)))
	e.WriteString(`,"end":`)
	e.WriteString(strconv.Itoa(int(sp.End)))
	if sp.Loc != nil {
		e.WriteString(`,"loc":`)
		if err := e.json(sp.Loc); err != nil {
			return err
		}
	}
	if sp.SourceFile != "" {
		e.WriteString(`,"sourceFile":`)
		e.WriteString(quote(sp.SourceFile))
	}
	if sp.Range != nil {
		e.WriteString(`,"range":[`)
		e.WriteString(strconv.Itoa(int(sp.Range[0])))
		e.WriteByte(',')
		e.WriteString(strconv.Itoa(int(sp.Range[1])))
		e.WriteByte(']')
	}

	for _, f := range fieldsOf(v.Type()) {
		fv := v.Field(f.index)
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		if f.omitEmpty && fv.Kind() == reflect.Slice && fv.Len() == 0 {
			continue
		}
		if f.omitNil && fv.IsNil() {
			continue
		}
		e.WriteString(`,"`)
		e.WriteString(f.name)
		e.WriteString(`":`)
		if lit, ok := n.(*Literal); ok && f.name == "value" {
			e.literalValue(lit.Value)
			continue
		}
		if err := e.value(fv); err != nil {
			return err
		}
	}
	e.WriteByte('}')
	return nil
}

func (e *encoder) value(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			e.WriteString("null")
			return nil
		}
		return e.value(v.Elem())
	case reflect.Ptr:
		if v.IsNil() {
			e.WriteString("null")
			return nil
		}
		if n, ok := v.Interface().(Node); ok {
			return e.node(n)
		}
		return e.value(v.Elem())
	case reflect.Slice:
		e.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				e.WriteByte(',')
			}
			if err := e.value(v.Index(i)); err != nil {
				return err
			}
		}
		e.WriteByte(']')
		return nil
	}
	if v.Type() == tokenType {
		e.WriteString(strconv.Quote(token.Token(v.Int()).String()))
		return nil
	}
	return e.json(v.Interface())
}

// literalValue mirrors what JSON.stringify produces for a literal's runtime
// value: non-finite numbers and bigints become null, regular expressions an
// empty object.
func (e *encoder) literalValue(val any) {
	switch val := val.(type) {
	case nil:
		e.WriteString("null")
	case string:
		e.WriteString(quote(val))
	case bool:
		e.WriteString(strconv.FormatBool(val))
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			e.WriteString("null")
			return
		}
		e.WriteString(formatNumber(val))
	case interface{ String() string }:
		if _, isRegexp := val.(interface{ MatchString(string) (bool, error) }); isRegexp {
			e.WriteString("{}")
			return
		}
		e.WriteString("null")
	default:
		e.WriteString("{}")
	}
}

func (e *encoder) json(v any) error {
	b, err := encode(v)
	if err != nil {
		return err
	}
	e.Write(b)
	return nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func quote(s string) string {
	b, err := encode(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

// formatNumber renders f the way Number.prototype.toString does.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
