package typetag

import (
	"fmt"
	"sync/atomic"
)

// classSeq numbers classes in declaration order. The sequence is part of a
// class's identity key so that two classes with the same name stay distinct.
var classSeq atomic.Uint64

// Class is a nominal class descriptor. Classes support multiple
// inheritance; the subclass relation is the reflexive-transitive closure
// over bases. A Class is itself a type tag.
type Class struct {
	name  string
	seq   uint64
	bases []*Class
}

// NewClass declares a class deriving from the given bases. With no bases
// the class derives from Object. Deriving from a closed special form
// (Any, a union, a type variable, a tuple or callable tag, or a raw form)
// fails with IllegalSubclassing.
func NewClass(name string, bases ...Type) (*Class, error) {
	resolved := make([]*Class, 0, len(bases))
	for _, b := range bases {
		c, ok := b.(*Class)
		if !ok {
			return nil, newIllegalSubclassing(name, b)
		}
		resolved = append(resolved, c)
	}
	if len(resolved) == 0 {
		resolved = []*Class{Object}
	}
	return &Class{name: name, seq: classSeq.Add(1), bases: resolved}, nil
}

// MustNewClass is NewClass for statically known-good declarations.
func MustNewClass(name string, bases ...Type) *Class {
	c, err := NewClass(name, bases...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the declared class name.
func (c *Class) Name() string { return c.name }

// Bases returns the direct base classes.
func (c *Class) Bases() []*Class { return c.bases }

func (c *Class) String() string { return c.name }

func (c *Class) Key() string { return fmt.Sprintf("class:%s#%d", c.name, c.seq) }

// isSubclassOf walks the base graph. Object is the universal base, so
// every class is a subclass of it even when declared without bases.
func (c *Class) isSubclassOf(other *Class) bool {
	if other == Object {
		return true
	}
	seen := map[*Class]bool{}
	stack := []*Class{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == other {
			return true
		}
		if seen[cur] {
			continue
		}
		seen[cur] = true
		stack = append(stack, cur.bases...)
	}
	return false
}

// New creates an instance of the class.
func (c *Class) New() *Instance { return &Instance{class: c} }

// Instance is a runtime instance of a user-declared class.
type Instance struct {
	class *Class
}

// ClassVal returns the instance's class.
func (v *Instance) ClassVal() *Class { return v.class }

func (v *Instance) String() string { return fmt.Sprintf("<%s instance>", v.class.name) }

// Builtin classes of the host value model. Object is the universal base;
// ClassOf maps plain Go values onto the rest.
var (
	Object *Class
	Int    *Class
	Float  *Class
	Bool   *Class
	String *Class
	Bytes  *Class
	Nil    *Class
	Seq    *Class
	Func   *Class
)

func init() {
	Object = &Class{name: "Object", seq: classSeq.Add(1)}
	for _, b := range []struct {
		dst  **Class
		name string
	}{
		{&Int, "Int"},
		{&Float, "Float"},
		{&Bool, "Bool"},
		{&String, "String"},
		{&Bytes, "Bytes"},
		{&Nil, "Nil"},
		{&Seq, "Seq"},
		{&Func, "Func"},
	} {
		*b.dst = &Class{name: b.name, seq: classSeq.Add(1), bases: []*Class{Object}}
	}
}

// Tuple is a fixed-length ordered sequence value. Its class is Seq.
type Tuple []any

// Classer lets values outside this package declare their class.
type Classer interface {
	ClassVal() *Class
}

// ClassOf maps a runtime value onto its class. Unknown Go values fall
// back to Object.
func ClassOf(v any) *Class {
	switch val := v.(type) {
	case nil:
		return Nil
	case bool:
		return Bool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Int
	case float32, float64:
		return Float
	case string:
		return String
	case []byte:
		return Bytes
	case Tuple:
		return Seq
	case *FuncValue:
		return Func
	case Classer:
		return val.ClassVal()
	default:
		return Object
	}
}
