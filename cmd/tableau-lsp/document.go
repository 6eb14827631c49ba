package main

import (
	"context"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/avl42/tableau/formula"
)

// documentStore tracks one open text document per URI, grounded on
// cmd/tony-lsp/diagnostics.go's documentStore: a mutex-guarded map kept
// current by DidOpen/DidChange/DidClose. Unlike the teacher's version this
// domain has no parse tree to cache — each line is reparsed on demand
// since formula.Parse is cheap and the grammar has no cross-line state.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	content string
	version int32
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &document{content: content, version: version}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// line returns the 0-indexed line n of the document's content, or "" if
// out of range.
func (d *document) line(n int) string {
	lines := strings.Split(d.content, "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		r := change.Range
		if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
			content = change.Text
			continue
		}
		start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
		end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
		runes := []rune(content)
		if start <= len(runes) && end <= len(runes) {
			content = string(runes[:start]) + change.Text + string(runes[end:])
		}
	}
	s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	return nil
}

func (s *Server) WillSave(ctx context.Context, params *protocol.WillSaveTextDocumentParams) error {
	return nil
}

func (s *Server) WillSaveWaitUntil(ctx context.Context, params *protocol.WillSaveTextDocumentParams) ([]protocol.TextEdit, error) {
	return nil, nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// publishDiagnostics flags every line that formula.Classify rejects,
// reusing the same NotAFormula check the line-oriented CLI's SAT mode
// uses, grounded on cmd/tony-lsp/diagnostics.go's publishDiagnostics.
func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	var diagnostics []protocol.Diagnostic
	for i, line := range strings.Split(doc.content, "\n") {
		if line == "" {
			continue
		}
		if formula.Classify(line) == formula.NotAFormula {
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(i), Character: 0},
					End:   protocol.Position{Line: uint32(i), Character: uint32(len([]rune(line)))},
				},
				Severity: protocol.DiagnosticSeverityError,
				Message:  line + " is not a formula.",
				Source:   "tableau",
			})
		}
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func lineColToOffset(content string, line, col int) int {
	currentLine, currentCol := 0, 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
