package checker

import (
	"fmt"

	"github.com/funvibe/anno/internal/typeexpr"
	"github.com/funvibe/anno/internal/typetag"
)

// Result is the outcome of a single assertion.
type Result struct {
	Desc string
	Pass bool
	Got  string
	Err  error
}

// Run evaluates every assertion in the suite. A declaration error aborts
// the run; a failing or erroring assertion does not.
func (s *Suite) Run() ([]Result, error) {
	scope, err := s.buildScope()
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(s.Checks))
	for i, c := range s.Checks {
		results = append(results, s.runCheck(i, c, scope))
	}
	return results, nil
}

func (s *Suite) runCheck(i int, c Check, scope *typeexpr.Scope) Result {
	switch {
	case c.IsInstance != nil:
		return runInstance(c.IsInstance, scope)
	case c.IsSubclass != nil:
		return runSubclass(c.IsSubclass, scope)
	case c.Equal != nil:
		return runEqual(c.Equal, scope)
	case c.Repr != nil:
		return runRepr(c.Repr, scope)
	}
	return Result{
		Desc: fmt.Sprintf("check #%d", i+1),
		Err:  fmt.Errorf("check #%d: no assertion given", i+1),
	}
}

func runInstance(c *InstanceCheck, scope *typeexpr.Scope) Result {
	desc := fmt.Sprintf("isinstance(%v, %s) == %t", c.Value, c.Type, c.Want)
	t, err := typeexpr.Parse(c.Type, scope)
	if err != nil {
		return Result{Desc: desc, Err: err}
	}
	got := typetag.IsInstance(hostValue(c.Value), t)
	return Result{Desc: desc, Pass: got == c.Want, Got: fmt.Sprintf("%t", got)}
}

func runSubclass(c *SubclassCheck, scope *typeexpr.Scope) Result {
	desc := fmt.Sprintf("issubclass(%s, %s) == %t", c.A, c.B, c.Want)
	a, err := typeexpr.Parse(c.A, scope)
	if err != nil {
		return Result{Desc: desc, Err: err}
	}
	b, err := typeexpr.Parse(c.B, scope)
	if err != nil {
		return Result{Desc: desc, Err: err}
	}
	got := typetag.IsSubclass(a, b)
	return Result{Desc: desc, Pass: got == c.Want, Got: fmt.Sprintf("%t", got)}
}

func runEqual(c *EqualCheck, scope *typeexpr.Scope) Result {
	desc := fmt.Sprintf("equal(%s, %s) == %t", c.A, c.B, c.Want)
	a, err := typeexpr.Parse(c.A, scope)
	if err != nil {
		return Result{Desc: desc, Err: err}
	}
	b, err := typeexpr.Parse(c.B, scope)
	if err != nil {
		return Result{Desc: desc, Err: err}
	}
	got := typetag.Equal(a, b)
	return Result{Desc: desc, Pass: got == c.Want, Got: fmt.Sprintf("%t", got)}
}

func runRepr(c *ReprCheck, scope *typeexpr.Scope) Result {
	desc := fmt.Sprintf("repr(%s) == %q", c.Type, c.Want)
	t, err := typeexpr.Parse(c.Type, scope)
	if err != nil {
		return Result{Desc: desc, Err: err}
	}
	got := t.String()
	return Result{Desc: desc, Pass: got == c.Want, Got: got}
}
