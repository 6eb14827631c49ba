package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/avl42/tableau/formula"
	"github.com/avl42/tableau/tableau"
)

// Hover answers the same two queries §6's line-oriented command does —
// parse classification and satisfiability verdict — for whatever formula
// occupies the line under the cursor, grounded in shape on
// cmd/tony-lsp/hover.go's buildHoverText (look up the value at the
// position, render a Markdown fact list) but reading the tableau engine
// instead of an ir.Node's type/tag/value.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	line := doc.line(int(params.Position.Line))
	if line == "" {
		return nil, nil
	}

	text := hoverText(line)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

func hoverText(line string) string {
	f, err := formula.Parse(line)
	if err != nil {
		return fmt.Sprintf("**%s**", formula.NotAFormula.Phrase())
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("**Category:** %s", f.Category().Phrase()))
	if f.Category().Binary() {
		parts = append(parts, fmt.Sprintf("**Left:** `%s`  \n**Connective:** `%s`  \n**Right:** `%s`",
			formula.Lhs(line), formula.Con(line), formula.Rhs(line)))
	}
	parts = append(parts, fmt.Sprintf("**Satisfiability:** %s", tableau.Solve(f).Phrase()))
	return strings.Join(parts, "\n\n")
}
