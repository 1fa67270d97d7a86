// Package formula evaluates the user-editable bonus expression. The language
// is deliberately tiny: numbers, a fixed set of named variables, + - * /, and
// parentheses. There is no ambient state, no function calls, and no side
// effects; every failure comes back as an error for the caller to surface.
package formula

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Eval parses and evaluates src against the provided variables. Unknown
// variables, syntax errors, and division by zero all return an error.
func Eval(src string, vars map[string]float64) (float64, error) {
	toks, err := lex(src)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks, vars: vars}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if !p.done() {
		return 0, fmt.Errorf("unexpected %q", p.peek().text)
	}
	return v, nil
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

func lex(src string) ([]token, error) {
	var toks []token
	rest := src
	for rest != "" {
		r := rune(rest[0])
		switch {
		case unicode.IsSpace(r):
			rest = rest[1:]
		case strings.ContainsRune("+-*/()", r):
			toks = append(toks, token{kind: tokOp, text: string(r)})
			rest = rest[1:]
		case unicode.IsDigit(r) || r == '.':
			i := 0
			for i < len(rest) && (unicode.IsDigit(rune(rest[i])) || rest[i] == '.') {
				i++
			}
			n, err := strconv.ParseFloat(rest[:i], 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q", rest[:i])
			}
			toks = append(toks, token{kind: tokNumber, text: rest[:i], num: n})
			rest = rest[i:]
		case unicode.IsLetter(r) || r == '_':
			i := 0
			for i < len(rest) && (unicode.IsLetter(rune(rest[i])) || unicode.IsDigit(rune(rest[i])) || rest[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: rest[:i]})
			rest = rest[i:]
		default:
			return nil, fmt.Errorf("unexpected character %q", r)
		}
	}
	toks = append(toks, token{kind: tokEOF, text: "end of formula"})
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
	vars map[string]float64
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) done() bool { return p.peek().kind == tokEOF }

func (p *parser) accept(op string) bool {
	if t := p.peek(); t.kind == tokOp && t.text == op {
		p.pos++
		return true
	}
	return false
}

// expr = term { ("+"|"-") term }
func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.accept("+"):
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v += r
		case p.accept("-"):
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

// term = unary { ("*"|"/") unary }
func (p *parser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.accept("*"):
			r, err := p.unary()
			if err != nil {
				return 0, err
			}
			v *= r
		case p.accept("/"):
			r, err := p.unary()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= r
		default:
			return v, nil
		}
	}
}

// unary = ["-"|"+"] primary
func (p *parser) unary() (float64, error) {
	if p.accept("-") {
		v, err := p.unary()
		return -v, err
	}
	if p.accept("+") {
		return p.unary()
	}
	return p.primary()
}

// primary = number | variable | "(" expr ")"
func (p *parser) primary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return t.num, nil
	case tokIdent:
		v, ok := p.vars[t.text]
		if !ok {
			return 0, fmt.Errorf("unknown variable %q", t.text)
		}
		return v, nil
	case tokOp:
		if t.text == "(" {
			v, err := p.expr()
			if err != nil {
				return 0, err
			}
			if !p.accept(")") {
				return 0, fmt.Errorf("missing closing parenthesis")
			}
			return v, nil
		}
	}
	return 0, fmt.Errorf("unexpected %q", t.text)
}
