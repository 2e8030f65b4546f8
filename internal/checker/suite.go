// Package checker loads and runs YAML check suites: declarative
// assertions about type-tag membership, subsumption, equality and
// display forms, evaluated against classes and type variables declared
// in the same file.
package checker

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/anno/internal/typeexpr"
	"github.com/funvibe/anno/internal/typetag"
)

// Suite is one check-suite file.
type Suite struct {
	Name     string        `yaml:"suite"`
	Classes  []ClassDecl   `yaml:"classes"`
	TypeVars []TypeVarDecl `yaml:"typevars"`
	Checks   []Check       `yaml:"checks"`
}

// ClassDecl declares a class available to the suite's type expressions.
// Declaration order matters: bases must be declared (or builtin) first.
type ClassDecl struct {
	Name  string   `yaml:"name"`
	Bases []string `yaml:"bases,omitempty"`
}

// TypeVarDecl declares a type variable. Constraints are type
// expressions.
type TypeVarDecl struct {
	Name        string   `yaml:"name"`
	Constraints []string `yaml:"constraints,omitempty"`
}

// Check is a single assertion. Exactly one of the fields is set.
type Check struct {
	IsInstance *InstanceCheck `yaml:"isinstance,omitempty"`
	IsSubclass *SubclassCheck `yaml:"issubclass,omitempty"`
	Equal      *EqualCheck    `yaml:"equal,omitempty"`
	Repr       *ReprCheck     `yaml:"repr,omitempty"`
}

// InstanceCheck asserts is-instance(value, type) == want. Value is a
// YAML literal; sequences become tuple values.
type InstanceCheck struct {
	Value any    `yaml:"value"`
	Type  string `yaml:"type"`
	Want  bool   `yaml:"want"`
}

// SubclassCheck asserts is-subclass(a, b) == want.
type SubclassCheck struct {
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Want bool   `yaml:"want"`
}

// EqualCheck asserts equal(a, b) == want.
type EqualCheck struct {
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Want bool   `yaml:"want"`
}

// ReprCheck asserts the display form of a type expression.
type ReprCheck struct {
	Type string `yaml:"type"`
	Want string `yaml:"want"`
}

// LoadSuite reads and parses one suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSuite(data)
}

// ParseSuite parses suite YAML.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return &s, nil
}

// hostValue converts a YAML literal into a host runtime value. YAML
// sequences become fixed-length tuples, recursively.
func hostValue(v any) any {
	if seq, ok := v.([]any); ok {
		tup := make(typetag.Tuple, len(seq))
		for i, el := range seq {
			tup[i] = hostValue(el)
		}
		return tup
	}
	return v
}

// buildScope declares the suite's classes and type variables into a
// fresh scope.
func (s *Suite) buildScope() (*typeexpr.Scope, error) {
	scope := typeexpr.NewScope()
	for _, decl := range s.Classes {
		bases := make([]typetag.Type, 0, len(decl.Bases))
		for _, name := range decl.Bases {
			base, err := typeexpr.Parse(name, scope)
			if err != nil {
				return nil, fmt.Errorf("class %s: %w", decl.Name, err)
			}
			bases = append(bases, base)
		}
		class, err := typetag.NewClass(decl.Name, bases...)
		if err != nil {
			return nil, err
		}
		scope.Define(decl.Name, class)
	}
	for _, decl := range s.TypeVars {
		constraints := make([]typetag.Type, 0, len(decl.Constraints))
		for _, expr := range decl.Constraints {
			c, err := typeexpr.Parse(expr, scope)
			if err != nil {
				return nil, fmt.Errorf("typevar %s: %w", decl.Name, err)
			}
			constraints = append(constraints, c)
		}
		scope.Define(decl.Name, typetag.NewTypeVar(decl.Name, constraints...))
	}
	return scope, nil
}
