// SPDX-License-Identifier: MIT

package symbolic

import (
	"math/big"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Grammar:
//
//	expr  := term (("+" | "-") term)*
//	term  := unary (("*" | "/") unary)*
//	unary := ("+" | "-")* power
//	power := atom (("^" | "**") "-"? Number)?
//	atom  := Number | Ident | "(" expr ")"

type exprNode struct {
	Head *termNode  `@@`
	Tail []*addNode `@@*`
}

type addNode struct {
	Op   string    `@("+" | "-")`
	Term *termNode `@@`
}

type termNode struct {
	Head *unaryNode `@@`
	Tail []*mulNode `@@*`
}

type mulNode struct {
	Op     string     `@("*" | "/")`
	Factor *unaryNode `@@`
}

type unaryNode struct {
	Signs []string   `@("+" | "-")*`
	Power *powerNode `@@`
}

type powerNode struct {
	Base *atomNode     `@@`
	Exp  *exponentNode `( ("^" | "**") @@ )?`
}

type exponentNode struct {
	Neg   bool   `@"-"?`
	Value string `@Number`
}

type atomNode struct {
	Number *string   `  @Number`
	Symbol *string   `| @Ident`
	Group  *exprNode `| "(" @@ ")"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+\.?\d*|\.\d+`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Operator", Pattern: `\*\*|[-+*/^()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseExpr = participle.MustBuild[exprNode](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

// Parse converts gain text into a simplified Expr.
//
// Numbers are exact: "0.25" is 1/4, never a float. Symbols are identifiers
// (letters, digits, underscore; not starting with a digit).
func Parse(text string) (Expr, error) {
	ast, err := parseExpr.ParseString("", text)
	if err != nil {
		return Expr{}, errors.Wrapf(ErrSyntax, "%q: %v", text, err)
	}
	e, err := ast.eval()
	if err != nil {
		return Expr{}, errors.Wrapf(err, "%q", text)
	}

	return e, nil
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(text string) Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return e
}

func (n *exprNode) eval() (Expr, error) {
	acc, err := n.Head.eval()
	if err != nil {
		return Expr{}, err
	}
	for _, t := range n.Tail {
		rhs, err := t.Term.eval()
		if err != nil {
			return Expr{}, err
		}
		if t.Op == "-" {
			acc = acc.Sub(rhs)
		} else {
			acc = acc.Add(rhs)
		}
	}

	return acc, nil
}

func (n *termNode) eval() (Expr, error) {
	acc, err := n.Head.eval()
	if err != nil {
		return Expr{}, err
	}
	for _, f := range n.Tail {
		rhs, err := f.Factor.eval()
		if err != nil {
			return Expr{}, err
		}
		if f.Op == "/" {
			if acc, err = acc.Quo(rhs); err != nil {
				return Expr{}, err
			}
			continue
		}
		acc = acc.Mul(rhs)
	}

	return acc, nil
}

func (n *unaryNode) eval() (Expr, error) {
	v, err := n.Power.eval()
	if err != nil {
		return Expr{}, err
	}
	for _, s := range n.Signs {
		if s == "-" {
			v = v.Neg()
		}
	}

	return v, nil
}

func (n *powerNode) eval() (Expr, error) {
	base, err := n.Base.eval()
	if err != nil {
		return Expr{}, err
	}
	if n.Exp == nil {
		return base, nil
	}
	k, err := strconv.Atoi(n.Exp.Value)
	if err != nil {
		return Expr{}, errors.Wrapf(ErrNonIntegerExponent, "exponent %s", n.Exp.Value)
	}
	if n.Exp.Neg {
		k = -k
	}

	return base.Pow(k)
}

func (n *atomNode) eval() (Expr, error) {
	switch {
	case n.Number != nil:
		r, ok := new(big.Rat).SetString(*n.Number)
		if !ok {
			return Expr{}, errors.Wrapf(ErrSyntax, "number %s", *n.Number)
		}
		return Rat(r), nil
	case n.Symbol != nil:
		return Var(*n.Symbol), nil
	default:
		return n.Group.eval()
	}
}
