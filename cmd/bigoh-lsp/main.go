// Package main implements bigoh-lsp, the complexity analyzer's language
// server. Grounded on cmd/kanso-lsp/main.go's wiring — see SPEC_FULL.md
// "4.8 LSP server".
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"bigoh/internal/lsp"
)

const lsName = "bigoh"

var version = "0.0.1"

func main() {
	commonlog.Configure(1, nil)

	h := lsp.NewBigohHandler()

	handler := protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
		WorkspaceExecuteCommand:        h.WorkspaceExecuteCommand,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting bigoh LSP server...")
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting bigoh LSP server:", err)
		os.Exit(1)
	}
}
