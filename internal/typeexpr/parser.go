package typeexpr

import (
	"fmt"

	"github.com/funvibe/anno/internal/typetag"
)

// ParseError reports a syntax or resolution failure with its column in
// the source expression.
type ParseError struct {
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %d: %s", e.Column, e.Msg)
}

// Scope resolves names appearing in type expressions. A fresh scope
// knows the special forms and the builtin classes; declared classes and
// type variables are added with Define.
type Scope struct {
	names map[string]typetag.Type
}

func NewScope() *Scope {
	s := &Scope{names: map[string]typetag.Type{
		"Any":      typetag.Any,
		"Union":    typetag.UnionForm,
		"Tuple":    typetag.TupleForm,
		"Callable": typetag.CallableForm,
		"Generic":  typetag.GenericForm,
	}}
	for _, c := range []*typetag.Class{
		typetag.Object, typetag.Int, typetag.Float, typetag.Bool,
		typetag.String, typetag.Bytes, typetag.Nil, typetag.Seq, typetag.Func,
	} {
		s.names[c.Name()] = c
	}
	return s
}

// Define binds a name to a tag, shadowing any previous binding.
func (s *Scope) Define(name string, t typetag.Type) {
	s.names[name] = t
}

// Lookup resolves a name.
func (s *Scope) Lookup(name string) (typetag.Type, bool) {
	t, ok := s.names[name]
	return t, ok
}

// Parse evaluates a type expression against a scope.
func Parse(input string, scope *Scope) (typetag.Type, error) {
	p := &parser{lex: NewLexer(input), scope: scope}
	p.next()
	p.next()
	t, err := p.parseUnionExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != EOF {
		return nil, p.errorf("unexpected %q after type expression", p.cur.Literal)
	}
	return t, nil
}

type parser struct {
	lex   *Lexer
	cur   Token
	peek  Token
	scope *Scope
}

func (p *parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Column: p.cur.Column, Msg: fmt.Sprintf(format, args...)}
}

// parseUnionExpr parses term ("|" term)*.
func (p *parser) parseUnionExpr() (typetag.Type, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	members := []typetag.Type{first}
	for p.cur.Type == PIPE {
		p.next()
		m, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if len(members) == 1 {
		return first, nil
	}
	return typetag.NewUnion(members...)
}

func (p *parser) parseTerm() (typetag.Type, error) {
	if p.cur.Type == TILDE {
		p.next()
		if p.cur.Type != IDENT {
			return nil, p.errorf("expected a type variable name after ~")
		}
	}
	if p.cur.Type != IDENT {
		return nil, p.errorf("%q is not a type expression", p.cur.Literal)
	}
	name := p.cur.Literal
	resolved, ok := p.scope.Lookup(name)
	if name == "Optional" {
		return p.parseOptional()
	}
	if !ok {
		return nil, p.errorf("unknown type %q", name)
	}
	p.next()
	if p.cur.Type != LBRACKET {
		return resolved, nil
	}
	if typetag.Equal(resolved, typetag.CallableForm) {
		return p.parseCallableArgs()
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return typetag.Subscript(resolved, args...)
}

// parseArgs parses "[" (expr ("," expr)*)? "]", cur positioned at "[".
func (p *parser) parseArgs() ([]typetag.Type, error) {
	p.next()
	var args []typetag.Type
	if p.cur.Type == RBRACKET {
		p.next()
		return args, nil
	}
	for {
		a, err := p.parseUnionExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		switch p.cur.Type {
		case COMMA:
			p.next()
		case RBRACKET:
			p.next()
			return args, nil
		default:
			return nil, p.errorf("expected , or ] in type arguments")
		}
	}
}

// parseCallableArgs parses "[[" params "]," ret "]", cur positioned at
// the outer "[".
func (p *parser) parseCallableArgs() (typetag.Type, error) {
	p.next()
	if p.cur.Type != LBRACKET {
		return nil, p.errorf("Callable requires a [params] list")
	}
	params, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != COMMA {
		return nil, p.errorf("Callable requires a return type")
	}
	p.next()
	ret, err := p.parseUnionExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != RBRACKET {
		return nil, p.errorf("expected ] to close Callable")
	}
	p.next()
	return typetag.CallableOf(params, ret), nil
}

func (p *parser) parseOptional() (typetag.Type, error) {
	p.next()
	if p.cur.Type != LBRACKET {
		return nil, p.errorf("Optional requires one type argument")
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, p.errorf("Optional requires exactly one type argument, got %d", len(args))
	}
	return typetag.Optional(args[0]), nil
}
