// Package stream feeds lines from a reader through a single markdown.Tokenizer
// and hands the per-line token sequences to a Sink. One tokenizer is shared
// across the whole stream so fenced code blocks stay coherent between lines.
package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/jvlp/md-parser/markdown"
)

// maxLineBytes caps a single input line for the scanner buffer.
const maxLineBytes = 1024 * 1024

// Result is one input line with the tokens produced from it.
type Result struct {
	Line   string
	Tokens []markdown.Token
}

// Sink receives one Result per input line, in order.
type Sink interface {
	Emit(res Result) error
}

// Run reads r line by line, tokenizes each line and emits the results. It
// stops early when the context is cancelled or the sink returns an error.
func Run(ctx context.Context, r io.Reader, sink Sink) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	t := markdown.New()

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Text()
		t.SetLine(line)

		var tokens []markdown.Token
		for token := t.Next(); token != nil; token = t.Next() {
			tokens = append(tokens, *token)
		}

		if err := sink.Emit(Result{Line: line, Tokens: tokens}); err != nil {
			return fmt.Errorf("sink failed: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// WriterSink prints each line and its tokens to W, one pair per line.
type WriterSink struct {
	W io.Writer
}

func (s *WriterSink) Emit(res Result) error {
	_, err := fmt.Fprintf(s.W, "line: %q\n%v\n", res.Line, res.Tokens)
	return err
}
