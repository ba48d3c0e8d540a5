// Package progrock provides the Progrock implementation of the tracer adapter.
package progrock

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/sift/internal/core/ports"
)

var _ ports.Tracer = (*Tracer)(nil)

// Tracer implements ports.Tracer by recording each span as a progrock vertex.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Tracer with a default tape.
func New() *Tracer {
	return NewTracer(progrock.NewTape())
}

// NewTracer creates a new Tracer recording to the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins recording a vertex for the named unit of work.
func (t *Tracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Span wraps a *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write appends to the vertex's output stream.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError records an error for the span; End reports it.
func (s *Span) RecordError(err error) {
	s.err = err
}

// SetAttribute writes a key-value pair to the vertex's output stream.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End completes the vertex, reporting any recorded error.
func (s *Span) End() {
	s.vertex.Done(s.err)
}
