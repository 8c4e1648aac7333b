// Package lsp implements the bigoh language server: on document
// open/change it parses and semantically analyzes the buffer and
// publishes diagnostics, and it exposes a custom `workspace/executeCommand`
// command ("bigoh.complexity") returning the buffer's current big-O /
// big-Ω / Θ / notes for an editor to render inline. Grounded on
// cmd/kanso-lsp/main.go and internal/lsp/{handler,diagnostics,semantic}.go
// — see SPEC_FULL.md "4.8 LSP server".
package lsp

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"bigoh/internal/analysis"
	"bigoh/internal/ast"
)

// SemanticTokenTypes and SemanticTokenModifiers are this language's
// legend, exactly mirroring the teacher's KansoHandler field names and
// capability wiring (see DESIGN.md).
var SemanticTokenTypes = []string{
	"namespace", "type", "function", "variable", "parameter",
	"keyword", "number", "operator", "comment",
}

var SemanticTokenModifiers = []string{
	"declaration", "definition", "readonly",
}

// ComplexityCommand is the workspace/executeCommand name an editor
// invokes to get the current buffer's complexity summary, the concrete
// counterpart of the "bigoh/complexity" custom request named in
// SPEC_FULL.md §4.8.
const ComplexityCommand = "bigoh.complexity"

// BigohHandler implements the LSP server handlers for the pseudocode
// dialect. A single mutex guards its own per-document maps; the analyzer
// itself is pure over immutable input and needs no locking of its own
// (spec.md §5, SPEC_FULL.md §5).
type BigohHandler struct {
	mu      sync.RWMutex
	content map[string]string
	progs   map[string]*ast.Program
	results map[string]*analysis.Result
}

// NewBigohHandler creates an empty handler ready to serve documents.
func NewBigohHandler() *BigohHandler {
	return &BigohHandler{
		content: make(map[string]string),
		progs:   make(map[string]*ast.Program),
		results: make(map[string]*analysis.Result),
	}
}

// Initialize advertises this server's capabilities.
func (h *BigohHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("bigoh-lsp: Initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
			ExecuteCommandProvider: &protocol.ExecuteCommandOptions{
				Commands: []string{ComplexityCommand},
			},
		},
	}, nil
}

func (h *BigohHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("bigoh-lsp: Initialized")
	return nil
}

func (h *BigohHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("bigoh-lsp: Shutdown")
	return nil
}

func (h *BigohHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen analyzes the opened buffer and publishes diagnostics.
func (h *BigohHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return h.refresh(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange re-analyzes the full buffer text on every change,
// matching the TextDocumentSyncKindFull capability advertised above.
func (h *BigohHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change, ok := params.ContentChanges[len(params.ContentChanges)-1].(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	return h.refresh(ctx, params.TextDocument.URI, change.Text)
}

// TextDocumentDidClose drops this document's cached state.
func (h *BigohHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.progs, path)
	delete(h.results, path)
	return nil
}

// WorkspaceExecuteCommand answers ComplexityCommand with the named
// document's current analysis summary.
func (h *BigohHandler) WorkspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	if params.Command != ComplexityCommand || len(params.Arguments) == 0 {
		return nil, fmt.Errorf("unknown command %q", params.Command)
	}
	uri, ok := params.Arguments[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s expects a document URI as its first argument", ComplexityCommand)
	}
	path, err := uriToPath(uri)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	res := h.results[path]
	h.mu.RUnlock()
	if res == nil {
		return map[string]any{"big_o": "unknown", "notes": []string{"document not analyzed yet"}}, nil
	}
	return map[string]any{
		"big_o": res.BigO, "big_omega": res.BigOmega, "theta": res.Theta,
		"method_used": res.MethodUsed, "notes": res.Notes,
	}, nil
}

// TextDocumentSemanticTokensFull tokenizes the buffer for basic
// keyword/operator highlighting.
func (h *BigohHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	h.mu.RLock()
	source := h.content[path]
	h.mu.RUnlock()

	tokens := collectSemanticTokens(source)
	var data []uint32
	var prevLine, prevStart uint32
	for _, t := range tokens {
		deltaLine := t.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = t.StartChar - prevStart
		} else {
			deltaStart = t.StartChar
		}
		data = append(data, deltaLine, deltaStart, t.Length, uint32(t.TokenType), uint32(t.TokenModifiers))
		prevLine, prevStart = t.Line, t.StartChar
	}
	return &protocol.SemanticTokens{Data: data}, nil
}

// refresh re-parses and re-analyzes uri's content, caches the result, and
// publishes diagnostics built from whatever stage failed.
func (h *BigohHandler) refresh(ctx *glsp.Context, uri protocol.DocumentUri, text string) error {
	path, err := uriToPath(uri)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	prog, perrs, serrs := analysis.Parse(path, text)
	if len(perrs) > 0 || len(serrs) > 0 {
		h.mu.Lock()
		h.content[path] = text
		delete(h.progs, path)
		delete(h.results, path)
		h.mu.Unlock()

		diags := append(ConvertScanErrors(serrs), ConvertParseErrors(perrs)...)
		sendDiagnosticNotification(ctx, uri, diags)
		return nil
	}

	prog, issues := analysis.Semantic(prog)
	result, rerr := analysis.Analyze(prog, analysis.DefaultOptions())

	h.mu.Lock()
	h.content[path] = text
	h.progs[path] = prog
	if rerr == nil {
		h.results[path] = result
	}
	h.mu.Unlock()

	diags := ConvertSemanticIssues(issues)
	if rerr != nil {
		diags = append(diags, protocol.Diagnostic{
			Range:    protocol.Range{Start: protocol.Position{Line: 0, Character: 0}, End: protocol.Position{Line: 0, Character: 1}},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("bigoh-analysis"),
			Message:  rerr.Error(),
		})
	}
	sendDiagnosticNotification(ctx, uri, diags)
	return nil
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool { return &b }

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func ptrString(s string) *string { return &s }
