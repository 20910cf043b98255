package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

func uintPtr(u uint) *uint       { return &u }
func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }

// colorScheme holds hex values for markdown rendering.
type colorScheme struct {
	text    string
	muted   string
	heading string
	emph    string
	strong  string
	link    string
	code    string
}

func resolveColorScheme() colorScheme {
	if IsDarkBackground() {
		return colorScheme{
			text: "#F9FAFB", muted: "#9CA3AF",
			heading: "#22D3EE", emph: "#FDE047",
			strong: "#F9FAFB", link: "#60A5FA",
			code: "#D1D5DB",
		}
	}
	return colorScheme{
		text: "#1F2937", muted: "#6B7280",
		heading: "#0891B2", emph: "#D97706",
		strong: "#1F2937", link: "#2563EB",
		code: "#374151",
	}
}

// markdownStyle is a compact glamour style: no document margin, flat lists,
// headings in the accent color.
func markdownStyle() ansi.StyleConfig {
	cs := resolveColorScheme()

	heading := func(prefix string) ansi.StyleBlock {
		return ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{
			Prefix: prefix,
			Color:  stringPtr(cs.heading),
			Bold:   boolPtr(true),
		}}
	}

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(cs.text)},
			Margin:         uintPtr(0),
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:  stringPtr(cs.muted),
				Italic: boolPtr(true),
				Prefix: "┃ ",
			},
			Indent: uintPtr(1),
		},
		List: ansi.StyleList{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: stringPtr(cs.text)},
			},
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       stringPtr(cs.heading),
				Bold:        boolPtr(true),
			},
		},
		H1: heading("# "),
		H2: heading("## "),
		H3: heading("### "),
		H4: heading("#### "),
		Emph: ansi.StylePrimitive{
			Color:  stringPtr(cs.emph),
			Italic: boolPtr(true),
		},
		Strong: ansi.StylePrimitive{
			Color: stringPtr(cs.strong),
			Bold:  boolPtr(true),
		},
		HorizontalRule: ansi.StylePrimitive{
			Color:  stringPtr(cs.muted),
			Format: "\n" + strings.Repeat("─", 40) + "\n",
		},
		Item:        ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration: ansi.StylePrimitive{BlockPrefix: ". "},
		Link: ansi.StylePrimitive{
			Color:     stringPtr(cs.link),
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: stringPtr(cs.link),
			Bold:  boolPtr(true),
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(cs.code)},
		},
		Text: ansi.StylePrimitive{Color: stringPtr(cs.text)},
	}
}

// toMarkdown renders content as terminal markdown wrapped at width. On a
// renderer failure the content is returned unchanged.
func toMarkdown(content string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
