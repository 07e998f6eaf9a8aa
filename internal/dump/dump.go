// Package dump renders token sequences for the command line tool.
package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/prepor/Eden/lexer"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Text writes one aligned "line:col type payload" row per token.
// Tokens without a location drop the position column.
func (w *Writer) Text(tokens []lexer.Token) error {
	for _, tk := range tokens {
		var err error
		if tk.Start.Line > 0 {
			_, err = fmt.Fprintf(w.w, "%4d:%-4d %-13s %q\n", tk.Start.Line, tk.Start.Column, tk.Type, tk.Contents)
		} else {
			_, err = fmt.Fprintf(w.w, "%-13s %q\n", tk.Type, tk.Contents)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

type tokenJSON struct {
	Type     string        `json:"type"`
	Value    string        `json:"value"`
	Location *locationJSON `json:"location,omitempty"`
}

type locationJSON struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// JSON writes the sequence as one indented JSON array.
func (w *Writer) JSON(tokens []lexer.Token) error {
	out := make([]tokenJSON, 0, len(tokens))

	for _, tk := range tokens {
		j := tokenJSON{
			Type:  tk.Type.String(),
			Value: tk.Contents,
		}
		if tk.Start.Line > 0 {
			j.Location = &locationJSON{
				Line: tk.Start.Line,
				Col:  tk.Start.Column,
			}
		}

		out = append(out, j)
	}

	enc := json.NewEncoder(w.w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// Stats writes per-type token counts in alphabetical order, then a
// total line.
func (w *Writer) Stats(tokens []lexer.Token) error {
	counts := make(map[string]int)
	for _, tk := range tokens {
		counts[tk.Type.String()]++
	}

	names := maps.Keys(counts)
	slices.Sort(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w.w, "%-13s %d\n", name, counts[name]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w.w, "%-13s %d\n", "total", len(tokens))
	return err
}
