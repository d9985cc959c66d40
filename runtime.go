package speculss

import (
	"github.com/tetratelabs/speculss/internal/csslex"
	"github.com/tetratelabs/speculss/internal/partition"
)

// Runtime tokenizes CSS source text, with the default implementation as
// NewRuntime.
//
// Note: A Runtime is safe for concurrent use by multiple goroutines: it
// holds no mutable state of its own, only an immutable Config snapshot.
type Runtime interface {
	// Tokenize lexes text sequentially and returns every Node in source
	// order. This never returns an error: malformed input simply produces
	// BadString/BadURL tokens (see Node.Token.Kind), per the CSS Syntax
	// error-recovery model.
	Tokenize(text string) []Node

	// SpecTokenize lexes text using the speculative parallel driver
	// configured by Config.WithPartitions, and returns the same token
	// sequence Tokenize would have, plus Stats describing how many of the
	// partition boundary predictions were wrong.
	//
	// SourceLocation on nodes from partitions after the first may not
	// match Tokenize's Line/Column, since a worker that restarts mid-buffer
	// cannot cheaply recover the true line count that preceded it.
	//
	// This only returns an error if a worker goroutine panicked.
	SpecTokenize(text string) (Stats, []Node, error)
}

// Node is a lexed token paired with its source location. It is a type
// alias so callers never need to import internal/csslex directly.
type Node = csslex.Node

// Stats carries the observable statistics from one SpecTokenize run.
type Stats = partition.Stats

// runtime implements Runtime.
type runtime struct {
	partitions int
}

// NewRuntime returns a Runtime configured by NewConfig.
func NewRuntime() Runtime {
	return NewRuntimeWithConfig(NewConfig())
}

// NewRuntimeWithConfig returns a Runtime configured by cfg. A nil cfg
// panics, consistent with passing nil to any other Config-accepting
// constructor in this module.
func NewRuntimeWithConfig(cfg *Config) Runtime {
	return &runtime{partitions: cfg.partitions}
}

// Tokenize implements Runtime.Tokenize.
func (r *runtime) Tokenize(text string) []Node {
	return csslex.All(text)
}

// SpecTokenize implements Runtime.SpecTokenize.
func (r *runtime) SpecTokenize(text string) (Stats, []Node, error) {
	return partition.SpecTokenize(text, r.partitions)
}
