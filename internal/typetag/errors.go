package typetag

import "fmt"

// InvalidTypeArgumentError indicates a special form was applied or
// instantiated incorrectly (e.g. subscripting Any, an empty Union, or
// instantiating a closed form).
type InvalidTypeArgumentError struct {
	Msg string
}

func (e *InvalidTypeArgumentError) Error() string {
	return fmt.Sprintf("invalid type argument: %s", e.Msg)
}

func newInvalidTypeArgument(format string, args ...any) *InvalidTypeArgumentError {
	return &InvalidTypeArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// IllegalSubclassingError indicates an attempt to derive an open class
// from a closed special form or from a type variable.
type IllegalSubclassingError struct {
	Class string
	Base  Type
}

func (e *IllegalSubclassingError) Error() string {
	return fmt.Sprintf("class %s cannot derive from closed form %s", e.Class, e.Base)
}

func newIllegalSubclassing(class string, base Type) *IllegalSubclassingError {
	return &IllegalSubclassingError{Class: class, Base: base}
}

// ReentrantBindingError indicates a scoped binding handle was entered
// again while already active.
type ReentrantBindingError struct {
	Var *TypeVar
}

func (e *ReentrantBindingError) Error() string {
	return fmt.Sprintf("binding for %s is already active", e.Var)
}

// ConstraintMismatchError indicates a type variable was bound to a type
// outside its declared constraints.
type ConstraintMismatchError struct {
	Var      *TypeVar
	Concrete Type
}

func (e *ConstraintMismatchError) Error() string {
	return fmt.Sprintf("%s cannot bind to %s: no matching constraint", e.Var, e.Concrete)
}

// UnhashableValueError indicates an undefined placeholder was used where
// a mapping key is required.
type UnhashableValueError struct {
	Value any
}

func (e *UnhashableValueError) Error() string {
	return fmt.Sprintf("unhashable value: %v", e.Value)
}
