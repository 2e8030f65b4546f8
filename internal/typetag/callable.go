package typetag

// Param is one declared parameter of a function value. A nil Annot means
// the parameter is unannotated and accepts any value.
type Param struct {
	Name       string
	Annot      Type
	HasDefault bool
}

// FuncValue is an explicit signature description of a function value.
// Signatures are declared up front rather than reflected off a callable,
// so membership checks only ever consult declared annotations.
type FuncValue struct {
	Name     string
	Params   []Param
	Variadic *Param // trailing *args parameter, if any
	Return   Type   // nil = unannotated, compatible with any declared return
}

func (f *FuncValue) String() string { return f.Name }

// matches checks the declared signature against a Callable tag:
// the declared arity must fit between the required and maximum arity of
// the function, parameters are checked contravariantly (the function's
// annotation must accept at least the declared parameter type) and the
// return covariantly.
func (f *FuncValue) matches(c *CallableType) bool {
	required := 0
	for _, p := range f.Params {
		if !p.HasDefault {
			required++
		}
	}
	if len(c.Params) < required {
		return false
	}
	if len(c.Params) > len(f.Params) && f.Variadic == nil {
		return false
	}
	for i, declared := range c.Params {
		var annot Type
		if i < len(f.Params) {
			annot = f.Params[i].Annot
		} else {
			annot = f.Variadic.Annot
		}
		if annot == nil {
			continue
		}
		if !IsSubclass(declared, annot) {
			return false
		}
	}
	if f.Return != nil && !IsSubclass(f.Return, c.Return) {
		return false
	}
	return true
}
