// Package lsp implements a language server that checks open documents
// against a matcher and reports documents that do not match.
package lsp

import (
	"fmt"
	"sync"

	"github.com/dhamidi/pcomb/combinator"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "pcomb"

// Server is a language server that reports open documents not matching
// its matcher.
type Server struct {
	matcher combinator.Matcher
	start   string
	version string
	handler protocol.Handler
	server  *server.Server

	mu   sync.Mutex
	docs map[protocol.DocumentUri]string
}

// NewServer returns a server validating documents with m. The start name
// only appears in diagnostic messages.
func NewServer(m combinator.Matcher, start, version string) *Server {
	ls := &Server{
		matcher: m,
		start:   start,
		version: version,
		docs:    make(map[protocol.DocumentUri]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

// RunStdio serves the protocol over standard input and output until the
// client disconnects.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func logger() commonlog.Logger {
	return commonlog.GetLogger("pcomb.lsp")
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	logger().Infof("validating documents against %s", ls.start)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.docs, params.TextDocument.URI)
	ls.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
		return nil
	}
	// Without included text, check the last content seen for the document.
	if diagnostics, ok := ls.diagnose(params.TextDocument.URI); ok {
		ls.publish(ctx, params.TextDocument.URI, diagnostics)
	}
	return nil
}

func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	ls.docs[uri] = text
	ls.mu.Unlock()

	diagnostics, _ := ls.diagnose(uri)
	ls.publish(ctx, uri, diagnostics)
}

// diagnose checks the stored text of an open document.
func (ls *Server) diagnose(uri protocol.DocumentUri) ([]protocol.Diagnostic, bool) {
	ls.mu.Lock()
	text, ok := ls.docs[uri]
	ls.mu.Unlock()
	if !ok {
		return nil, false
	}
	return Diagnose(ls.matcher, ls.start, text), true
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	logger().Debugf("%s: %d diagnostics", uri, len(diagnostics))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Diagnose matches text against m. A document that matches completely has no
// diagnostics. A failed match is reported at the start of the document; a
// match that stops early is reported over the input it left unconsumed.
func Diagnose(m combinator.Matcher, start, text string) []protocol.Diagnostic {
	res, ok := combinator.Parse(m, text)
	if ok && res.Next.AtEnd() {
		return []protocol.Diagnostic{}
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	d := protocol.Diagnostic{
		Severity: &severity,
		Source:   &source,
	}
	if !ok {
		d.Range = protocol.Range{Start: protocol.Position{}, End: protocol.Position{}}
		d.Message = fmt.Sprintf("document does not match %s", start)
	} else {
		d.Range = protocol.Range{
			Start: PositionAt(text, res.Next.Offset()),
			End:   PositionAt(text, len(text)),
		}
		d.Message = fmt.Sprintf("input not matched by %s", start)
	}
	return []protocol.Diagnostic{d}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
