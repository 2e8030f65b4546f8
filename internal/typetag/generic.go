package typetag

import (
	"fmt"
	"strings"
)

// GenericClass is a class parameterized by type variables. Parameter
// constraints are validated when the class is applied to type arguments,
// not when the resulting tag is used.
type GenericClass struct {
	class  *Class
	params []*TypeVar
	// fixed holds concrete arguments for classes derived from a fully
	// applied base, e.g. class Y deriving from C[Int]. Such classes
	// take no further type arguments.
	fixed []Type
}

// NewGenericClass declares a generic class. Params are the declared type
// variables; when nil, the parameters are inherited from the first
// generic base (deriving a plain subclass of a generic class) or from
// the type-variable arguments of a parameterized base.
//
// Bases may be plain classes, generic classes, or parameterized generic
// tags whose arguments are either all type variables satisfying the
// base's declared constraints or all concrete tags (fixing the
// derivation, as in class Y deriving from C[Int]). Mixing variables and
// concrete arguments in one base, or deriving from any other closed
// form, fails at construction time.
func NewGenericClass(name string, params []*TypeVar, bases ...Type) (*GenericClass, error) {
	resolved := make([]*Class, 0, len(bases))
	inherited := params
	var fixed []Type
	for _, b := range bases {
		switch base := b.(type) {
		case *Class:
			resolved = append(resolved, base)
		case *GenericClass:
			resolved = append(resolved, base.class)
			if inherited == nil {
				inherited = base.params
			}
		case *GenericType:
			if base.generic == nil {
				// Deriving from Generic[T, ...] introduces the
				// argument variables as parameters.
				vars, err := asTypeVars(name, base.args)
				if err != nil {
					return nil, err
				}
				if inherited == nil {
					inherited = vars
				}
				continue
			}
			resolved = append(resolved, base.generic.class)
			if countTypeVars(base.args) == 0 {
				// Fully applied base: the class is closed over
				// the base's arguments.
				if fixed == nil {
					fixed = base.args
				}
				continue
			}
			vars, err := asTypeVars(name, base.args)
			if err != nil {
				return nil, err
			}
			for i, v := range vars {
				param := base.generic.params[i]
				if param.Constrained() && !IsSubclass(v, param) {
					return nil, newInvalidTypeArgument(
						"%s does not satisfy the constraints of %s in %s",
						v, param, base.generic)
				}
			}
			if inherited == nil {
				inherited = vars
			}
		default:
			return nil, newIllegalSubclassing(name, b)
		}
	}
	if len(inherited) == 0 && len(fixed) == 0 {
		return nil, newInvalidTypeArgument("generic class %s has no type parameters", name)
	}
	if len(resolved) == 0 {
		resolved = []*Class{Object}
	}
	return &GenericClass{
		class:  &Class{name: name, seq: classSeq.Add(1), bases: resolved},
		params: inherited,
		fixed:  fixed,
	}, nil
}

func countTypeVars(args []Type) int {
	n := 0
	for _, a := range args {
		if _, ok := a.(*TypeVar); ok {
			n++
		}
	}
	return n
}

// MustNewGenericClass is NewGenericClass for statically known-good
// declarations.
func MustNewGenericClass(name string, params []*TypeVar, bases ...Type) *GenericClass {
	g, err := NewGenericClass(name, params, bases...)
	if err != nil {
		panic(err)
	}
	return g
}

func asTypeVars(class string, args []Type) ([]*TypeVar, error) {
	vars := make([]*TypeVar, len(args))
	for i, a := range args {
		v, ok := a.(*TypeVar)
		if !ok {
			return nil, newIllegalSubclassing(class, a)
		}
		vars[i] = v
	}
	return vars, nil
}

// Name returns the declared class name.
func (g *GenericClass) Name() string { return g.class.name }

// Params returns the declared type parameters.
func (g *GenericClass) Params() []*TypeVar { return g.params }

// New creates an instance of the generic class.
func (g *GenericClass) New() *Instance { return g.class.New() }

func (g *GenericClass) String() string {
	var parts []string
	for _, p := range g.params {
		parts = append(parts, p.String())
	}
	for _, f := range g.fixed {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s[%s]", g.class.name, strings.Join(parts, ", "))
}

func (g *GenericClass) Key() string {
	var parts []string
	for _, p := range g.params {
		parts = append(parts, p.Key())
	}
	for _, f := range g.fixed {
		parts = append(parts, f.Key())
	}
	return fmt.Sprintf("generic:%s[%s]", g.class.Key(), strings.Join(parts, ","))
}

// Instantiate applies type arguments to the generic class, validating
// each against the corresponding parameter's constraint set immediately.
func (g *GenericClass) Instantiate(args ...Type) (*GenericType, error) {
	if len(g.params) == 0 {
		return nil, newInvalidTypeArgument("%s takes no type arguments", g)
	}
	if len(args) != len(g.params) {
		return nil, newInvalidTypeArgument(
			"%s takes %d type arguments, got %d", g, len(g.params), len(args))
	}
	for i, arg := range args {
		param := g.params[i]
		if param.Constrained() && !IsSubclass(arg, param) {
			return nil, newInvalidTypeArgument(
				"%s does not satisfy the constraints of %s in %s", arg, param, g)
		}
	}
	return &GenericType{generic: g, args: args}, nil
}

// GenericType is a generic class applied to type arguments, such as
// SimpleMapping[String, Any]. A nil generic marks a raw Generic[...]
// application used as a declaration base.
type GenericType struct {
	generic *GenericClass
	args    []Type
}

// Args returns the applied type arguments.
func (t *GenericType) Args() []Type { return t.args }

// Generic returns the applied class, or nil for raw Generic applications.
func (t *GenericType) Generic() *GenericClass { return t.generic }

func (t *GenericType) String() string {
	parts := make([]string, len(t.args))
	for i, a := range t.args {
		parts[i] = a.String()
	}
	name := "Generic"
	if t.generic != nil {
		name = t.generic.class.name
	}
	return fmt.Sprintf("%s[%s]", name, strings.Join(parts, ", "))
}

func (t *GenericType) Key() string {
	parts := make([]string, len(t.args))
	for i, a := range t.args {
		parts[i] = a.Key()
	}
	name := "Generic"
	if t.generic != nil {
		name = t.generic.class.Key()
	}
	return fmt.Sprintf("app(%s,[%s])", name, strings.Join(parts, ","))
}

// Instantiate narrows an already-parameterized tag: every new argument
// must be accepted by the argument currently in that position.
func (t *GenericType) Instantiate(args ...Type) (*GenericType, error) {
	if len(args) != len(t.args) {
		return nil, newInvalidTypeArgument(
			"%s takes %d type arguments, got %d", t, len(t.args), len(args))
	}
	for i, arg := range args {
		if !acceptsArg(t.args[i], arg) {
			return nil, newInvalidTypeArgument(
				"%s is not a subtype of %s in %s", arg, t.args[i], t)
		}
	}
	return &GenericType{generic: t.generic, args: args}, nil
}

// acceptsArg reports whether a new type argument may replace cur. An
// unconstrained variable in cur accepts anything; otherwise ordinary
// subsumption decides.
func acceptsArg(cur, arg Type) bool {
	if v, ok := cur.(*TypeVar); ok && !v.Constrained() {
		return true
	}
	return IsSubclass(arg, cur)
}
