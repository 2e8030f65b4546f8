package typetag

import "fmt"

// UndefinedValue is a typed placeholder for a value that does not exist
// yet. It carries the declared tag and nothing else; using a placeholder
// as a mapping key is rejected by HashKey.
type UndefinedValue struct {
	t Type
}

// NewUndefined creates a placeholder of the given tag. A nil tag stands
// for Nil.
func NewUndefined(t Type) *UndefinedValue {
	if t == nil {
		t = Nil
	}
	return &UndefinedValue{t: t}
}

// Type returns the declared tag of the placeholder.
func (u *UndefinedValue) Type() Type { return u.t }

func (u *UndefinedValue) String() string {
	return fmt.Sprintf("Undefined(%s)", u.t)
}

// HashKey projects a runtime value onto a canonical string usable as a
// mapping key. Undefined placeholders are unhashable; tuples hash
// elementwise; instances and functions hash by identity.
func HashKey(value any) (string, error) {
	switch v := value.(type) {
	case *UndefinedValue:
		return "", &UnhashableValueError{Value: v}
	case nil:
		return "nil", nil
	case Tuple:
		key := "("
		for i, el := range v {
			ek, err := HashKey(el)
			if err != nil {
				return "", err
			}
			if i > 0 {
				key += ","
			}
			key += ek
		}
		return key + ")", nil
	case *Instance:
		return fmt.Sprintf("instance:%p", v), nil
	case *FuncValue:
		return fmt.Sprintf("func:%p", v), nil
	case []byte:
		return fmt.Sprintf("bytes:%q", v), nil
	default:
		return fmt.Sprintf("%T:%v", v, v), nil
	}
}
