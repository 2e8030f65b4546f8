package typetag

// IsInstance reports whether value is a member of the type denoted by t.
// A nil tag stands for Nil.
func IsInstance(value any, t Type) bool {
	if t == nil {
		t = Nil
	}
	switch tag := t.(type) {
	case anyType:
		return true
	case *Class:
		return ClassOf(value).isSubclassOf(tag)
	case *specialForm:
		switch tag.kind {
		case formTuple:
			return ClassOf(value).isSubclassOf(Seq)
		case formCallable:
			return ClassOf(value).isSubclassOf(Func)
		}
		return false
	case *Union:
		for _, m := range tag.members {
			if IsInstance(value, m) {
				return true
			}
		}
		return false
	case *TypeVar:
		if effective, bound := boundType(tag); bound {
			return IsInstance(value, effective)
		}
		// Unbound constrained variables accept members of any
		// alternative; unbound unconstrained variables accept nothing.
		for _, alt := range tag.constraints {
			if IsInstance(value, alt) {
				return true
			}
		}
		return false
	case *TupleType:
		tup, ok := value.(Tuple)
		if !ok || len(tup) != len(tag.Elems) {
			return false
		}
		for i, el := range tup {
			if !IsInstance(el, tag.Elems[i]) {
				return false
			}
		}
		return true
	case *CallableType:
		f, ok := value.(*FuncValue)
		return ok && f.matches(tag)
	case *GenericClass:
		return ClassOf(value).isSubclassOf(tag.class)
	case *GenericType:
		return tag.generic != nil && ClassOf(value).isSubclassOf(tag.generic.class)
	}
	return false
}
