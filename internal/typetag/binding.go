package typetag

import (
	"sync"

	"github.com/benbjohnson/immutable"
)

// bindings is the process-wide binding context: an immutable map from
// type-variable identity to the effective bound type. Scoped acquisition
// snapshots the whole map and restores the snapshot on exit, which gives
// stack discipline without per-entry bookkeeping. The mutex keeps the
// slot consistent if a host embeds the library in goroutines; the
// semantics remain those of a single-threaded binding stack.
var bindings = struct {
	mu  sync.Mutex
	cur *immutable.Map[string, Type]
}{cur: immutable.NewMap[string, Type](nil)}

// boundType returns the effective binding of v, if any.
func boundType(v *TypeVar) (Type, bool) {
	bindings.mu.Lock()
	defer bindings.mu.Unlock()
	return bindings.cur.Get(v.Key())
}

// VarBinding is a reusable scoped binding handle. The effective type is
// resolved against the variable's constraints once, when the handle is
// created. A handle may be entered any number of times sequentially but
// never while it is already active.
type VarBinding struct {
	v         *TypeVar
	effective Type
	active    bool
	saved     *immutable.Map[string, Type]
}

// Bind resolves concrete against the variable's constraints and returns
// a scoped binding handle. Binding a constrained variable to a type
// outside its alternatives fails with ConstraintMismatch.
func (v *TypeVar) Bind(concrete Type) (*VarBinding, error) {
	effective, err := v.resolveBinding(concrete)
	if err != nil {
		return nil, err
	}
	return &VarBinding{v: v, effective: effective}, nil
}

// Effective returns the type the variable is bound to inside the scope.
func (b *VarBinding) Effective() Type { return b.effective }

// Do runs fn with the binding active and restores the previous visible
// binding on every exit path, including a panic out of fn. Entering a
// handle that is already active fails with ReentrantBinding before fn
// runs.
func (b *VarBinding) Do(fn func()) error {
	if err := b.enter(); err != nil {
		return err
	}
	defer b.exit()
	fn()
	return nil
}

func (b *VarBinding) enter() error {
	bindings.mu.Lock()
	defer bindings.mu.Unlock()
	if b.active {
		return &ReentrantBindingError{Var: b.v}
	}
	b.active = true
	b.saved = bindings.cur
	bindings.cur = bindings.cur.Set(b.v.Key(), b.effective)
	return nil
}

func (b *VarBinding) exit() {
	bindings.mu.Lock()
	defer bindings.mu.Unlock()
	bindings.cur = b.saved
	b.saved = nil
	b.active = false
}
