package wrap

//go:generate go tool stringer --linecomment --type Shape --output shape_string.go

import (
	"context"
	"reflect"
)

// Shape is the calling-convention category of a callable. It selects
// which wrapping strategy applies and is determined exactly once, at
// wrap time.
type Shape int

const (
	ShapeInvalid Shape = iota // invalid
	ShapePlain                // plain
	ShapeMethod               // method
	ShapeContext              // context
	ShapeSeq                  // seq
)

//nolint:gochecknoglobals
var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()

// ShapeOf classifies the given value into exactly one shape.
//
// The context check precedes the method check because context.Context is
// itself an interface type; every other first-parameter interface tags
// the callable as a method expression.
func ShapeOf(fn any) Shape {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return ShapeInvalid
	}

	switch {
	case t.NumIn() > 0 && t.In(0) == contextType:
		return ShapeContext
	case t.NumOut() == 1 && isSeq(t.Out(0)):
		return ShapeSeq
	case t.NumIn() > 0 && t.In(0).Kind() == reflect.Interface:
		return ShapeMethod
	default:
		return ShapePlain
	}
}

// isSeq reports whether t has the push-iterator form
// func(yield func(V...) bool) used by iter.Seq and iter.Seq2.
func isSeq(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}

	y := t.In(0)

	return y.Kind() == reflect.Func &&
		y.NumIn() <= 2 &&
		y.NumOut() == 1 &&
		y.Out(0).Kind() == reflect.Bool
}
