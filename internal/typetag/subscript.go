package typetag

// Subscript applies type arguments to a parameterizable tag: Union and
// Tuple forms, the Generic form, and generic classes or their
// applications. Every other tag fails with InvalidTypeArgument.
func Subscript(t Type, args ...Type) (Type, error) {
	switch tag := t.(type) {
	case *specialForm:
		switch tag.kind {
		case formUnion:
			return NewUnion(args...)
		case formTuple:
			return TupleOf(args...), nil
		case formCallable:
			return nil, newInvalidTypeArgument(
				"Callable requires a parameter list and a return type")
		case formGeneric:
			if len(args) == 0 {
				return nil, newInvalidTypeArgument("Generic requires type arguments")
			}
			if _, err := asTypeVars("Generic", args); err != nil {
				return nil, newInvalidTypeArgument(
					"Generic arguments must be type variables")
			}
			return &GenericType{args: args}, nil
		}
	case *GenericClass:
		return tag.Instantiate(args...)
	case *GenericType:
		return tag.Instantiate(args...)
	}
	return nil, newInvalidTypeArgument("%s is not a generic type", t)
}

// Instantiate creates an instance of a class tag. Special forms, unions,
// type variables and signature tags are closed and cannot be
// instantiated.
func Instantiate(t Type) (any, error) {
	switch tag := t.(type) {
	case *Class:
		return tag.New(), nil
	case *GenericClass:
		return tag.New(), nil
	case *GenericType:
		if tag.generic != nil {
			return tag.generic.New(), nil
		}
	}
	return nil, newInvalidTypeArgument("cannot instantiate %s", t)
}
