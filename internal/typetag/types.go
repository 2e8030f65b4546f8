// Package typetag implements the runtime type-annotation model for anno:
// immutable type tags, the membership and subsumption predicates over them,
// and scoped type-variable bindings.
//
// Tags are plain values constructed once and never mutated. Equality is
// structural with set semantics for unions; display preserves the order in
// which members were written.
package typetag

import (
	"fmt"
	"strings"
)

// Type is the interface for all type tags.
type Type interface {
	// String returns the display form of the tag. Union members keep
	// their construction order.
	String() string

	// Key returns the canonical identity of the tag. Two tags denote the
	// same type extension iff their keys are equal, so Key is usable as a
	// Go map key. Union member keys are sorted.
	Key() string
}

// Equal reports whether two tags denote the same type extension.
// Either argument may be nil; nil is only equal to nil.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// anyType is the tag of the universal type. See the Any singleton.
type anyType struct{}

func (anyType) String() string { return "Any" }
func (anyType) Key() string    { return "Any" }

// Any matches every value and is a supertype of every tag.
// It is a closed form: it cannot be instantiated, subscripted or derived.
var Any Type = anyType{}

// formKind discriminates the raw (unsubscripted) special forms.
type formKind int

const (
	formUnion formKind = iota
	formTuple
	formCallable
	formGeneric
)

// specialForm is a raw special form such as the bare Union or Tuple.
// Raw forms are closed: they only ever produce parameterized tags through
// Subscript and refuse instantiation and derivation.
type specialForm struct {
	name string
	kind formKind
}

func (f *specialForm) String() string { return f.name }
func (f *specialForm) Key() string    { return f.name }

var (
	// UnionForm is the bare Union special form. Every parameterized
	// union is a subtype of it.
	UnionForm Type = &specialForm{name: "Union", kind: formUnion}

	// TupleForm is the bare Tuple special form. It matches any tuple
	// value regardless of arity.
	TupleForm Type = &specialForm{name: "Tuple", kind: formTuple}

	// CallableForm is the bare Callable special form. It matches any
	// function value regardless of signature.
	CallableForm Type = &specialForm{name: "Callable", kind: formCallable}

	// GenericForm is the bare Generic special form, subscripted with
	// type variables when declaring generic classes.
	GenericForm Type = &specialForm{name: "Generic", kind: formGeneric}
)

// TupleType is a fixed-arity tuple tag, e.g. Tuple[Int, Float].
// A TupleType with no elements is the empty-tuple tag Tuple[], which is
// distinct from the bare TupleForm.
type TupleType struct {
	Elems []Type
}

// TupleOf builds a fixed-arity tuple tag.
func TupleOf(elems ...Type) *TupleType {
	return &TupleType{Elems: elems}
}

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Tuple[%s]", strings.Join(parts, ", "))
}

func (t *TupleType) Key() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.Key()
	}
	return fmt.Sprintf("tuple(%s)", strings.Join(parts, ","))
}

// CallableType is a function signature tag, e.g. Callable[[Int], String].
type CallableType struct {
	Params []Type
	Return Type
}

// CallableOf builds a function signature tag.
func CallableOf(params []Type, ret Type) *CallableType {
	return &CallableType{Params: params, Return: ret}
}

func (t *CallableType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Callable[[%s], %s]", strings.Join(parts, ", "), t.Return.String())
}

func (t *CallableType) Key() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.Key()
	}
	return fmt.Sprintf("callable((%s),%s)", strings.Join(parts, ","), t.Return.Key())
}
