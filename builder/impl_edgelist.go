// SPDX-License-Identifier: MIT
// Package: mason/builder
//
// impl_edgelist.go - textual edge lists.
//
// Grammar (one branch per item, items separated by ";" or newlines):
//
//	list := sep* (edge sep*)*
//	edge := Node "->" Node (":" gain)?
//
// Node is a run of letters, digits and underscores. gain is any text up to the
// next separator or "#" and is parsed by symbolic.Parse; a missing gain is 1.
// "#" starts a comment running to the end of the line.
//
//	R -> A : a; A -> B : b
//	B -> C : c   # forward
//	B -> A : -L  # feedback

package builder

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mason/core"
	"github.com/katalvlaran/mason/symbolic"
)

// EdgeSpec is one parsed edge-list item.
type EdgeSpec struct {
	From, To string
	Gain     symbolic.Expr
	// Line is the 1-based source line of the item.
	Line int
}

type edgeListAST struct {
	Edges []*edgeDecl `Sep* ( @@ Sep* )*`
}

type edgeDecl struct {
	Pos  lexer.Position
	From string  `@Node "->"`
	To   string  `@Node`
	Gain *string `@Gain?`
}

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Gain", Pattern: `:[^;\n#]*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Node", Pattern: `[\p{L}\p{N}_]+`},
	{Name: "Sep", Pattern: `[;\n]`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var parseEdgeList = participle.MustBuild[edgeListAST](
	participle.Lexer(edgeListLexer),
	participle.Elide("Whitespace", "Comment"),
)

// ParseEdgeList parses edge-list text into EdgeSpecs in source order.
//
// Errors:
//   - ErrEdgeListSyntax for text outside the grammar or an empty gain.
//   - symbolic.ErrSyntax (and friends) for a gain that does not parse.
func ParseEdgeList(text string) ([]EdgeSpec, error) {
	ast, err := parseEdgeList.ParseString("", text)
	if err != nil {
		return nil, errors.Wrapf(ErrEdgeListSyntax, "%v", err)
	}

	specs := make([]EdgeSpec, 0, len(ast.Edges))
	for _, d := range ast.Edges {
		gain := symbolic.One()
		if d.Gain != nil {
			src := strings.TrimSpace(strings.TrimPrefix(*d.Gain, ":"))
			if src == "" {
				return nil, errors.Wrapf(ErrEdgeListSyntax, "line %d: %s -> %s: empty gain", d.Pos.Line, d.From, d.To)
			}
			if gain, err = symbolic.Parse(src); err != nil {
				return nil, errors.Wrapf(err, "line %d: %s -> %s", d.Pos.Line, d.From, d.To)
			}
		}
		specs = append(specs, EdgeSpec{From: d.From, To: d.To, Gain: gain, Line: d.Pos.Line})
	}

	return specs, nil
}

// EdgeList returns a Constructor adding every branch of the edge-list text in
// source order. Self-loops and parallel branches need core.WithLoops and
// core.WithMultiEdges on the graph.
func EdgeList(text string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		specs, err := ParseEdgeList(text)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodEdgeList, err)
		}
		for _, s := range specs {
			if _, err = g.AddEdge(s.From, s.To, s.Gain); err != nil {
				return fmt.Errorf("%s: line %d: AddEdge(%s→%s, %s): %w", MethodEdgeList, s.Line, s.From, s.To, s.Gain, err)
			}
		}

		return nil
	}
}
