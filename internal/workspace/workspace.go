// Package workspace caches the token sequences of the files under a
// root directory so tools can re-read them cheaply.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prepor/Eden/lexer"
)

type Workspace struct {
	rootPath string

	tokenized map[string][]lexer.Token
}

func New(rootPath string) *Workspace {
	return &Workspace{
		rootPath:  rootPath,
		tokenized: make(map[string][]lexer.Token),
	}
}

// Load reads and tokenizes the file at relPath, reusing the cached
// sequence when the file has been loaded before.
func (w *Workspace) Load(relPath string) ([]lexer.Token, error) {
	fullPath := filepath.Join(w.rootPath, relPath)

	if tks, ok := w.tokenized[fullPath]; ok {
		return tks, nil
	}

	bytes, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return w.store(fullPath, relPath, bytes)
}

// LoadWithContents tokenizes an in-memory copy of relPath, e.g. an
// unsaved editor buffer, replacing any cached sequence for it.
func (w *Workspace) LoadWithContents(relPath string, contents []byte) ([]lexer.Token, error) {
	return w.store(filepath.Join(w.rootPath, relPath), relPath, contents)
}

func (w *Workspace) store(fullPath, relPath string, contents []byte) ([]lexer.Token, error) {
	tks, err := lexer.Tokenize(contents, relPath, lexer.WithLocations())
	if err != nil {
		return nil, fmt.Errorf("lex file: %w", err)
	}

	w.tokenized[fullPath] = tks
	return tks, nil
}
