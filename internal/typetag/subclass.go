package typetag

// IsSubclass reports whether a is subsumed by b ("a is a subtype of b").
// A nil tag stands for Nil. The relation is reflexive for every
// well-formed tag.
//
// Rule order matters: union and constrained-variable operands on the left
// quantify over all of their members, while on the right a single match
// suffices.
func IsSubclass(a, b Type) bool {
	if a == nil {
		a = Nil
	}
	if b == nil {
		b = Nil
	}
	if Equal(a, b) {
		return true
	}

	// Any is a supertype of everything, and is itself subsumed only by
	// the universal Object class.
	if Equal(b, Any) {
		return true
	}
	if Equal(a, Any) {
		return b == Object
	}
	if b == Object {
		return true
	}

	// Raw special forms subsume their parameterized tags and nothing
	// else; on the left they are terminal.
	if f, ok := b.(*specialForm); ok {
		return subsumedByForm(a, f)
	}
	if _, ok := a.(*specialForm); ok {
		return false
	}

	// A union is a subtype of b iff every member is.
	if u, ok := a.(*Union); ok {
		for _, m := range u.members {
			if !IsSubclass(m, b) {
				return false
			}
		}
		return true
	}

	// A constrained variable behaves like the union of its
	// alternatives on the left.
	if v, ok := a.(*TypeVar); ok && v.Constrained() {
		for _, alt := range v.constraints {
			if !IsSubclass(alt, b) {
				return false
			}
		}
		return true
	}

	// A variable on the right accepts subtypes of its current binding,
	// or of any constraint alternative while unbound. A left-side
	// variable is never substituted by its binding.
	if v, ok := b.(*TypeVar); ok {
		if effective, bound := boundType(v); bound {
			return IsSubclass(a, effective)
		}
		for _, alt := range v.constraints {
			if IsSubclass(a, alt) {
				return true
			}
		}
		return false
	}

	// a is a subtype of a union iff it is a subtype of some member.
	if u, ok := b.(*Union); ok {
		for _, m := range u.members {
			if IsSubclass(a, m) {
				return true
			}
		}
		return false
	}

	switch x := a.(type) {
	case *TypeVar:
		// Unconstrained and not identical to b.
		return false
	case *TupleType:
		y, ok := b.(*TupleType)
		if !ok || len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !IsSubclass(x.Elems[i], y.Elems[i]) {
				return false
			}
		}
		return true
	case *CallableType:
		// Signature tags are invariant under subsumption: distinct
		// signatures are unrelated in either direction. Parameter and
		// return variance applies to function values, in IsInstance.
		return false
	case *GenericClass:
		switch y := b.(type) {
		case *GenericClass:
			return x.class.isSubclassOf(y.class)
		case *Class:
			return x.class.isSubclassOf(y)
		}
		return false
	case *GenericType:
		if x.generic == nil {
			return false
		}
		switch y := b.(type) {
		case *GenericClass:
			return x.generic.class.isSubclassOf(y.class)
		case *Class:
			return x.generic.class.isSubclassOf(y)
		}
		return false
	case *Class:
		y, ok := b.(*Class)
		return ok && x.isSubclassOf(y)
	}
	return false
}

func subsumedByForm(a Type, f *specialForm) bool {
	switch f.kind {
	case formUnion:
		_, ok := a.(*Union)
		return ok
	case formTuple:
		if _, ok := a.(*TupleType); ok {
			return true
		}
		if c, ok := a.(*Class); ok {
			return c.isSubclassOf(Seq)
		}
		return false
	case formCallable:
		if _, ok := a.(*CallableType); ok {
			return true
		}
		if c, ok := a.(*Class); ok {
			return c.isSubclassOf(Func)
		}
		return false
	case formGeneric:
		switch a.(type) {
		case *GenericClass, *GenericType:
			return true
		}
		return false
	}
	return false
}
