package typetag

import (
	"errors"
	"testing"
)

func TestTypeVarInstance(t *testing.T) {
	tv := NewTypeVar("T")
	anyStr := NewTypeVar("AnyStr", String, Bytes)

	if IsInstance(42, tv) {
		t.Error("unbound unconstrained variable should match nothing")
	}
	if !IsInstance([]byte("b"), anyStr) {
		t.Error("IsInstance([]byte, AnyStr) = false, want true")
	}
	if !IsInstance("s", anyStr) {
		t.Error("IsInstance(string, AnyStr) = false, want true")
	}
	if IsInstance(42, anyStr) {
		t.Error("IsInstance(42, AnyStr) = true, want false")
	}
}

func TestTypeVarSubclass(t *testing.T) {
	tv := NewTypeVar("T")
	anyStr := NewTypeVar("AnyStr", String, Bytes)

	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"T <= Any", tv, Any, true},
		{"Int <= T", Int, tv, false},
		{"Bytes <= AnyStr", Bytes, anyStr, true},
		{"String <= AnyStr", String, anyStr, true},
		{"T <= T", tv, tv, true},
		{"AnyStr <= AnyStr", anyStr, anyStr, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSubclass(tt.a, tt.b); got != tt.want {
				t.Errorf("IsSubclass(%s, %s) = %t, want %t", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTypeVarRepr(t *testing.T) {
	for _, name := range []string{"T", "KT", "VT", "AnyStr"} {
		if got := NewTypeVar(name).String(); got != "~"+name {
			t.Errorf("String() = %q, want %q", got, "~"+name)
		}
	}
}

func TestTypeVarNoRedefinition(t *testing.T) {
	if Equal(NewTypeVar("T"), NewTypeVar("T")) {
		t.Error("two declarations of ~T should be distinct")
	}
	if Equal(NewTypeVar("T", Int, String), NewTypeVar("T", Int, String)) {
		t.Error("two constrained declarations of ~T should be distinct")
	}
}

func TestConstraintSetSubsumption(t *testing.T) {
	a := NewTypeVar("A", Int, String, Float)
	b := NewTypeVar("B", Int, String)
	unionIntStr := MustUnion(Int, String)
	unionIntStrFloat := MustUnion(Int, String, Float)

	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same constraints", NewTypeVar("T", Int, String), NewTypeVar("T", Int, String), true},
		{"narrow into wide", NewTypeVar("T", Int), NewTypeVar("T", Int, String), true},
		{"order irrelevant", NewTypeVar("T", Int, String), NewTypeVar("T", String, Int), true},
		{"B <= A", b, a, true},
		{"A <= B", a, b, false},
		{"A <= matching union", a, unionIntStrFloat, true},
		{"matching union <= A", unionIntStrFloat, a, true},
		{"narrow union <= B", unionIntStr, b, true},
		{"B <= narrow union", b, unionIntStr, true},
		{"wide union <= B", unionIntStrFloat, b, false},
		{"A <= narrow union", a, unionIntStr, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSubclass(tt.a, tt.b); got != tt.want {
				t.Errorf("IsSubclass(%s, %s) = %t, want %t", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVarUnionSubclass(t *testing.T) {
	tv := NewTypeVar("T")
	kt := NewTypeVar("KT")
	vt := NewTypeVar("VT")

	if !IsSubclass(tv, MustUnion(Int, tv)) {
		t.Error("~T should be a subtype of a union containing it")
	}
	if !IsSubclass(kt, MustUnion(kt, vt)) {
		t.Error("~KT should be a subtype of Union[~KT, ~VT]")
	}
}

func TestTypeVarClosed(t *testing.T) {
	var illegal *IllegalSubclassingError
	if _, err := NewClass("V", NewTypeVar("T")); !errors.As(err, &illegal) {
		t.Errorf("deriving from a type variable: error = %v, want IllegalSubclassing", err)
	}
	var invalid *InvalidTypeArgumentError
	if _, err := Instantiate(NewTypeVar("A")); !errors.As(err, &invalid) {
		t.Errorf("instantiating a type variable: error = %v, want InvalidTypeArgument", err)
	}
}

func TestBind(t *testing.T) {
	tv := NewTypeVar("T")
	if IsInstance(42, tv) {
		t.Fatal("baseline: unbound ~T should not match 42")
	}
	bv, err := tv.Bind(Int)
	if err != nil {
		t.Fatal(err)
	}
	err = bv.Do(func() {
		if !IsInstance(42, tv) {
			t.Error("bound ~T should match 42")
		}
		if IsInstance(3.14, tv) {
			t.Error("~T bound to Int should not match 3.14")
		}
		if !IsSubclass(Int, tv) {
			t.Error("IsSubclass(Int, bound ~T) = false, want true")
		}
		if IsSubclass(tv, Int) {
			t.Error("a left-side variable is never substituted by its binding")
		}
		if IsSubclass(Float, tv) {
			t.Error("IsSubclass(Float, ~T bound to Int) = true, want false")
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if IsInstance(42, tv) {
		t.Error("baseline should be restored after scope exit")
	}
}

func TestBindReuse(t *testing.T) {
	tv := NewTypeVar("T")
	bv, err := tv.Bind(Int)
	if err != nil {
		t.Fatal(err)
	}

	if err := bv.Do(func() {
		if !IsInstance(42, tv) {
			t.Error("bound ~T should match 42")
		}
	}); err != nil {
		t.Fatal(err)
	}
	if IsInstance(42, tv) {
		t.Error("baseline should be restored")
	}

	// Sequential reuse of the same handle works.
	if err := bv.Do(func() {
		if !IsInstance(42, tv) {
			t.Error("reused handle should bind again")
		}
		// Recursive reuse is rejected.
		var reentrant *ReentrantBindingError
		if err := bv.Do(func() { t.Error("should not get here") }); !errors.As(err, &reentrant) {
			t.Errorf("re-entrant Do error = %v, want ReentrantBinding", err)
		}
		// An explicit rebinding of the same variable shadows and restores.
		inner, err := tv.Bind(Float)
		if err != nil {
			t.Fatal(err)
		}
		if err := inner.Do(func() {
			if !IsInstance(3.14, tv) || IsInstance(42, tv) {
				t.Error("inner binding to Float should shadow Int")
			}
		}); err != nil {
			t.Fatal(err)
		}
		if !IsInstance(42, tv) || IsInstance(3.14, tv) {
			t.Error("outer binding should be visible again after the inner scope")
		}
	}); err != nil {
		t.Fatal(err)
	}
	if IsInstance(42, tv) {
		t.Error("baseline should be restored after reuse")
	}
}

func TestBindRestoredOnPanic(t *testing.T) {
	tv := NewTypeVar("T")
	bv, err := tv.Bind(Int)
	if err != nil {
		t.Fatal(err)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the panic to propagate")
			}
		}()
		_ = bv.Do(func() { panic("boom") })
	}()
	if IsInstance(42, tv) {
		t.Error("binding should be restored when the body panics")
	}
	// The handle stays usable afterwards.
	if err := bv.Do(func() {
		if !IsInstance(42, tv) {
			t.Error("handle should still bind after a panicking scope")
		}
	}); err != nil {
		t.Fatal(err)
	}
	if IsInstance(42, tv) {
		t.Error("baseline should be restored")
	}
}

func TestBindConstrainedUnion(t *testing.T) {
	tu := NewTypeVar("TU", MustUnion(Int, Float))

	if !IsInstance(42, tu) || !IsInstance(3.14, tu) || IsInstance("", tu) {
		t.Error("unbound constrained variable should match members of its alternatives")
	}

	bv, err := tu.Bind(Int)
	if err != nil {
		t.Fatal(err)
	}
	if err := bv.Do(func() {
		// The effective binding is the union.
		if !IsInstance(42, tu) || !IsInstance(3.14, tu) || IsInstance("", tu) {
			t.Error("effective binding should be the whole union")
		}
	}); err != nil {
		t.Fatal(err)
	}

	var mismatch *ConstraintMismatchError
	if _, err := tu.Bind(String); !errors.As(err, &mismatch) {
		t.Errorf("Bind(String) error = %v, want ConstraintMismatch", err)
	}
}

func TestBindMostSpecificAlternative(t *testing.T) {
	tu := NewTypeVar("TU", MustUnion(Int, Float), Int)

	bv, err := tu.Bind(Int)
	if err != nil {
		t.Fatal(err)
	}
	if err := bv.Do(func() {
		// Both alternatives match; the strictly more precise one wins.
		if !IsInstance(42, tu) {
			t.Error("IsInstance(42, TU) = false, want true")
		}
		if IsInstance(3.14, tu) || IsInstance("", tu) {
			t.Error("effective binding should be exactly Int")
		}
	}); err != nil {
		t.Fatal(err)
	}

	bv, err = tu.Bind(Float)
	if err != nil {
		t.Fatal(err)
	}
	if err := bv.Do(func() {
		// Only the union matches.
		if !IsInstance(42, tu) || !IsInstance(3.14, tu) || IsInstance("", tu) {
			t.Error("effective binding should be the union")
		}
	}); err != nil {
		t.Fatal(err)
	}
}

func TestBindOverlappingAlternatives(t *testing.T) {
	first := MustUnion(Int, Float)
	second := MustUnion(Float, String)
	tu := NewTypeVar("TU", first, second)

	bind := func(c Type) *VarBinding {
		t.Helper()
		bv, err := tu.Bind(c)
		if err != nil {
			t.Fatal(err)
		}
		return bv
	}

	if err := bind(Int).Do(func() {
		if !IsInstance(42, tu) || !IsInstance(3.14, tu) || IsInstance("", tu) {
			t.Error("binding Int should resolve to the first union")
		}
	}); err != nil {
		t.Fatal(err)
	}

	// Float matches both and neither alternative subsumes the other; the
	// first declared alternative wins.
	if err := bind(Float).Do(func() {
		if !IsInstance(42, tu) || !IsInstance(3.14, tu) || IsInstance("", tu) {
			t.Error("ambiguous binding should resolve to the first alternative")
		}
	}); err != nil {
		t.Fatal(err)
	}

	if err := bind(String).Do(func() {
		if IsInstance(42, tu) || !IsInstance(3.14, tu) || !IsInstance("", tu) {
			t.Error("binding String should resolve to the second union")
		}
	}); err != nil {
		t.Fatal(err)
	}
}
