// SPDX-License-Identifier: MIT
// File: print.go
// Role: rotated 2D rendering of a binary tree.

package tree

import (
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is the number of spaces added per tree level.
const DefaultIndent = 3

// Option configures Print.
type Option func(*Options)

// Options holds Print parameters.
type Options struct {
	// Indent is the number of spaces added per level.
	Indent int
}

// DefaultOptions returns Options with Indent = DefaultIndent.
func DefaultOptions() Options {
	return Options{Indent: DefaultIndent}
}

// WithIndent sets the per-level indent. Negative values are ignored.
func WithIndent(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Indent = n
		}
	}
}

// side tags how a node hangs off its parent.
type side int

const (
	sideRoot side = iota
	sideRight
	sideLeft
)

// Print writes root rotated 90° counter-clockwise: right subtree first,
// then the node, then the left subtree. A node at depth d is indented by
// d*Indent spaces; right children are prefixed "/ ", left children "\ ".
// A nil root writes nothing.
func Print[T any](w io.Writer, root *Node[T], opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := printer[T]{w: w, indent: o.Indent}
	p.print(root, 0, sideRoot)

	return p.err
}

// Sprint returns the Print output as a string.
func Sprint[T any](root *Node[T], opts ...Option) string {
	var sb strings.Builder
	_ = Print(&sb, root, opts...)

	return sb.String()
}

type printer[T any] struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer[T]) print(n *Node[T], depth int, s side) {
	if n == nil || p.err != nil {
		return
	}
	p.print(n.Right, depth+1, sideRight)

	prefix := strings.Repeat(" ", depth*p.indent)
	switch s {
	case sideRight:
		prefix += "/ "
	case sideLeft:
		prefix += "\\ "
	}
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, "%s%v\n", prefix, n.Value)
	}

	p.print(n.Left, depth+1, sideLeft)
}
