package prompt

import (
	"bytes"
	"fmt"
)

// section is a named block of text appended after the base instruction.
type section struct {
	name    string
	content string
}

// Builder composes a prompt from a base instruction and arbitrary named
// sections.
type Builder struct {
	base     string
	sections []section
}

// NewBuilder creates a Builder with the given base instruction. The base is
// always emitted first.
func NewBuilder(base string) *Builder {
	return &Builder{base: base}
}

// WithSection appends a named section. Empty content is skipped. Returns the
// builder for chaining.
func (b *Builder) WithSection(name, content string) *Builder {
	if content != "" {
		b.sections = append(b.sections, section{name: name, content: content})
	}
	return b
}

// Build assembles the prompt. Sections follow the base, separated by blank
// lines and introduced by a "# Name" header.
func (b *Builder) Build() string {
	var buf bytes.Buffer

	if b.base != "" {
		buf.WriteString(b.base)
	}

	for _, s := range b.sections {
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		if s.name != "" {
			fmt.Fprintf(&buf, "# %s\n\n", s.name)
		}
		buf.WriteString(s.content)
	}

	return buf.String()
}
