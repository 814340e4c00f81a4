// File: builder.go
// Role: Builder — a scoped capture region for constructing a Tape, with
//       a nested Suppress scope that turns recording off: configure uses
//       Suppress while building the cut-induced T_cut observable so
//       those Pauli constructions never become tape operations.
package qtape

import "github.com/katalvlaran/qcut/qop"

// Builder records operators and measurements applied through it onto an
// owned Tape, except while inside a Suppress call.
type Builder struct {
	tape      *Tape
	recording bool
}

// NewBuilder returns a Builder over a fresh empty Tape, recording on.
func NewBuilder() *Builder {
	return &Builder{tape: New(), recording: true}
}

// Apply records op onto the builder's tape if recording is active, and
// always returns op unchanged so call sites can chain construction and
// recording in one expression.
func (b *Builder) Apply(op qop.Operator) qop.Operator {
	if b.recording {
		b.tape.Append(op)
	}
	return op
}

// Measure records m onto the builder's tape if recording is active.
func (b *Builder) Measure(m *qop.Measurement) *qop.Measurement {
	if b.recording {
		b.tape.AppendMeasurement(m)
	}
	return m
}

// Suppress runs fn with recording turned off, then restores whatever
// recording state was active before the call (Suppress nests cleanly).
func (b *Builder) Suppress(fn func()) {
	prev := b.recording
	b.recording = false
	defer func() { b.recording = prev }()
	fn()
}

// Tape returns the tape the builder has recorded so far.
func (b *Builder) Tape() *Tape {
	return b.tape
}
