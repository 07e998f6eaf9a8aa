package main

import (
	goerrors "errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/prepor/Eden/errors"
	"github.com/prepor/Eden/internal/workspace"
	"github.com/prepor/Eden/lexer"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "eden"

var version string = "0.0.1"
var handler protocol.Handler

var documents = map[string]string{}

func main() {
	// This increases logging verbosity (optional)
	commonlog.Configure(1, nil)

	protocol.SetTraceValue(protocol.TraceValueMessage)

	handler = protocol.Handler{
		Initialize:  initialize,
		Initialized: initialized,
		Shutdown:    shutdown,
		SetTrace:    setTrace,
		TextDocumentDidOpen: func(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
			documents[params.TextDocument.URI] = params.TextDocument.Text

			return handleDocument(context, params.TextDocument.URI)
		},
		TextDocumentDidChange: func(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
			content, ok := documents[params.TextDocument.URI]
			if !ok {
				return nil
			}

			for _, change := range params.ContentChanges {
				switch change := change.(type) {
				case protocol.TextDocumentContentChangeEventWhole:
					documents[params.TextDocument.URI] = change.Text

				case protocol.TextDocumentContentChangeEvent:
					startIndex, endIndex := change.Range.IndexesIn(content)
					documents[params.TextDocument.URI] = content[:startIndex] + change.Text + content[endIndex:]
				}
			}

			return handleDocument(context, params.TextDocument.URI)
		},
		TextDocumentSemanticTokensFull: semanticTokensFull,
	}

	server := server.NewServer(&handler, lsName, false)

	server.RunStdio()
}

func handleDocument(context *glsp.Context, docURI string) error {
	url, err := url.Parse(docURI)
	if err != nil {
		return fmt.Errorf("parse document uri: %w", err)
	}
	if url.Scheme != "file" {
		return fmt.Errorf("invalid document uri scheme %q", url.Scheme)
	}

	contents, ok := documents[docURI]
	if !ok {
		return nil
	}

	filePath := url.Path
	fileName := filepath.Base(filePath)

	ws := workspace.New(filepath.Dir(url.Path))

	diag := []protocol.Diagnostic{}

	_, err = ws.LoadWithContents(fileName, []byte(contents))
	if err != nil {
		var poserr errors.SituatedErr

		if goerrors.As(err, &poserr) {
			diag = append(diag, protocol.Diagnostic{
				Range: protocol.Range{
					Start: pos(poserr.At()),
					End:   pos(poserr.At()),
				},
				Severity: ptr(protocol.DiagnosticSeverityError),
				Message:  poserr.Unwrap().Error(),
			})
		} else {
			diag = append(diag, protocol.Diagnostic{
				Severity: ptr(protocol.DiagnosticSeverityError),
				Message:  err.Error(),
			})
		}
	}

	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         docURI,
		Diagnostics: diag,
	})

	return nil
}

func initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := handler.CreateServerCapabilities()
	capabilities.SemanticTokensProvider = &protocol.SemanticTokensOptions{
		Legend: protocol.SemanticTokensLegend{
			TokenTypes: []string{
				"keyword",
				"variable",
				"number",
				"macro",
			},
		},
		Range: false,
		Full:  true,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func shutdown(context *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

const (
	semanticKeyword protocol.UInteger = iota
	semanticVariable
	semanticNumber
	semanticMacro
)

func semanticTokensFull(context *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	content, ok := documents[params.TextDocument.URI]
	if !ok {
		return nil, fmt.Errorf("document %q not found", params.TextDocument.URI)
	}

	data := make([]protocol.UInteger, 0)

	tokens, err := lexer.Tokenize([]byte(content), filepath.Base(params.TextDocument.URI), lexer.WithLocations())
	if err != nil {
		// lex failures surface through diagnostics, not here
		return &protocol.SemanticTokens{Data: data}, nil
	}

	prevPos := lexer.Location{Line: 1}

	for _, tk := range tokens {
		tokenType, ok := semanticTokenType(tk.Type)
		if !ok {
			continue
		}

		var startDelta protocol.UInteger
		if tk.Start.Line == prevPos.Line {
			startDelta = protocol.UInteger(tk.Start.Column - prevPos.Column)
		} else {
			startDelta = protocol.UInteger(tk.Start.Column)
		}

		data = append(data,
			protocol.UInteger(tk.Start.Line-prevPos.Line),
			startDelta,
			protocol.UInteger(sourceLen(tk)),
			tokenType,
			0,
		)

		prevPos = tk.Start
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// semanticTokenType maps a lexical token onto the legend announced in
// initialize. Strings, characters and comments are left out: their
// payloads are decoded, so their on-screen extent can't be recovered
// from the token alone.
func semanticTokenType(typ lexer.TokenType) (protocol.UInteger, bool) {
	switch typ {
	case lexer.TokenKeyword, lexer.TokenNil, lexer.TokenTrue, lexer.TokenFalse:
		return semanticKeyword, true
	case lexer.TokenSymbol:
		return semanticVariable, true
	case lexer.TokenInteger, lexer.TokenFloat:
		return semanticNumber, true
	case lexer.TokenTag, lexer.TokenNsMap, lexer.TokenSetOpen, lexer.TokenDiscard:
		return semanticMacro, true
	}

	return 0, false
}

// sourceLen is the token's extent in source characters. Keywords store
// their payload without the leading ':', every other highlighted type
// stores the literal as written.
func sourceLen(tk lexer.Token) int {
	n := len([]rune(tk.Contents))
	if tk.Type == lexer.TokenKeyword {
		n++
	}

	return n
}

func ptr[T any](v T) *T {
	return &v
}

func pos(l lexer.Location) protocol.Position {
	return protocol.Position{
		Line:      uint32(l.Line - 1),
		Character: uint32(l.Column),
	}
}
