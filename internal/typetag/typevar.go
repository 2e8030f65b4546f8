package typetag

import (
	"strings"

	"github.com/google/uuid"
)

// TypeVar is a type variable, optionally constrained to a fixed list of
// alternatives. Every declaration has a fresh identity, so two variables
// with the same name and constraints are distinct tags.
//
// An unconstrained variable matches nothing until bound. A constrained
// variable matches members of any alternative while unbound, and exactly
// the resolved alternative while bound (see Bind).
type TypeVar struct {
	name        string
	id          uuid.UUID
	constraints []Type
}

// NewTypeVar declares a type variable. Constraints, when given, are the
// ordered alternatives the variable may bind to.
func NewTypeVar(name string, constraints ...Type) *TypeVar {
	cs := make([]Type, len(constraints))
	for i, c := range constraints {
		if c == nil {
			c = Nil
		}
		cs[i] = c
	}
	return &TypeVar{name: name, id: uuid.New(), constraints: cs}
}

// Name returns the declared variable name.
func (v *TypeVar) Name() string { return v.name }

// Constraints returns the declared alternatives in declaration order.
func (v *TypeVar) Constraints() []Type { return v.constraints }

// Constrained reports whether the variable carries constraints.
func (v *TypeVar) Constrained() bool { return len(v.constraints) > 0 }

func (v *TypeVar) String() string { return "~" + v.name }

func (v *TypeVar) Key() string {
	var b strings.Builder
	b.WriteString("~")
	b.WriteString(v.name)
	b.WriteString("#")
	b.WriteString(v.id.String())
	return b.String()
}

// resolveBinding picks the effective type for binding v to concrete,
// per the constrained-variable resolution rules:
//
//   - unconstrained variables bind to the concrete type as-is,
//   - an exact constraint match binds to that alternative,
//   - otherwise, among the alternatives the concrete type is a subtype
//     of, the unique most specific one wins; with no unique most
//     specific alternative the first match in declaration order wins,
//   - no match at all fails with ConstraintMismatch.
func (v *TypeVar) resolveBinding(concrete Type) (Type, error) {
	if concrete == nil {
		concrete = Nil
	}
	if len(v.constraints) == 0 {
		return concrete, nil
	}
	var matches []Type
	for _, alt := range v.constraints {
		if Equal(concrete, alt) {
			return alt, nil
		}
		if IsSubclass(concrete, alt) {
			matches = append(matches, alt)
		}
	}
	if len(matches) == 0 {
		return nil, &ConstraintMismatchError{Var: v, Concrete: concrete}
	}
	for _, m := range matches {
		mostSpecific := true
		for _, other := range matches {
			if !IsSubclass(m, other) {
				mostSpecific = false
				break
			}
		}
		if mostSpecific {
			return m, nil
		}
	}
	return matches[0], nil
}
