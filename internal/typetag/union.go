package typetag

import (
	"sort"
	"strings"
)

// Union is a parameterized union tag. Invariants, maintained by NewUnion:
// no nested unions, no Any member, no member subsumed by another member,
// and at least two members (a single survivor collapses to itself).
// Members keep construction order for display; equality ignores order.
type Union struct {
	members []Type
}

// Members returns the normalized members in construction order.
func (u *Union) Members() []Type { return u.members }

func (u *Union) String() string {
	parts := make([]string, len(u.members))
	for i, m := range u.members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

func (u *Union) Key() string {
	parts := make([]string, len(u.members))
	for i, m := range u.members {
		parts[i] = m.Key()
	}
	sort.Strings(parts)
	return "union(" + strings.Join(parts, ",") + ")"
}

// NewUnion builds a normalized union of the given alternatives:
//
//   - nested unions are flattened,
//   - Any absorbs the whole union,
//   - duplicates are dropped (first occurrence wins),
//   - members subsumed by another member are dropped (so Object absorbs
//     every class, and a base class absorbs its subclasses),
//   - a single surviving member is returned directly.
//
// A union of zero alternatives fails with InvalidTypeArgument.
func NewUnion(members ...Type) (Type, error) {
	if len(members) == 0 {
		return nil, newInvalidTypeArgument("Union requires at least one alternative")
	}

	flat := make([]Type, 0, len(members))
	for _, m := range members {
		if m == nil {
			m = Nil
		}
		if u, ok := m.(*Union); ok {
			flat = append(flat, u.members...)
			continue
		}
		flat = append(flat, m)
	}

	// Any absorbs everything, including Object.
	for _, m := range flat {
		if Equal(m, Any) {
			return Any, nil
		}
	}

	seen := make(map[string]bool, len(flat))
	unique := make([]Type, 0, len(flat))
	for _, m := range flat {
		k := m.Key()
		if !seen[k] {
			seen[k] = true
			unique = append(unique, m)
		}
	}

	kept := make([]Type, 0, len(unique))
	for i, m := range unique {
		subsumed := false
		for j, other := range unique {
			if i == j {
				continue
			}
			if IsSubclass(m, other) && !IsSubclass(other, m) {
				subsumed = true
				break
			}
			// Mutually subsuming non-identical members: keep the
			// first-written one.
			if IsSubclass(m, other) && j < i {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, m)
		}
	}

	if len(kept) == 1 {
		return kept[0], nil
	}
	return &Union{members: kept}, nil
}

// MustUnion is NewUnion for statically known-good alternatives.
func MustUnion(members ...Type) Type {
	u, err := NewUnion(members...)
	if err != nil {
		panic(err)
	}
	return u
}

// Optional is shorthand for a union of t and Nil.
func Optional(t Type) Type {
	return MustUnion(t, Nil)
}
