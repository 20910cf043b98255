package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/mark3labs/homeinfo/internal/config"
	"github.com/mark3labs/homeinfo/internal/lookup"
)

const unknown = "unknown"

// Renderer writes a lookup result in one of the supported formats. Text
// output is styled only when the destination is a terminal; otherwise the
// overview is written exactly as the model returned it.
type Renderer struct {
	out    io.Writer
	format string
	styled bool
	width  int
	theme  Theme
}

// NewRenderer creates a Renderer for format (config.FormatText, FormatJSON or
// FormatYAML).
func NewRenderer(out io.Writer, format string) *Renderer {
	r := &Renderer{
		out:    out,
		format: format,
		styled: format == config.FormatText && IsTerminal(out),
		width:  terminalWidth(out),
	}
	if r.styled {
		r.theme = DefaultTheme()
	}
	return r
}

// Styled reports whether output goes to a terminal with styling.
func (r *Renderer) Styled() bool { return r.styled }

// Render writes info.
func (r *Renderer) Render(info *lookup.HomeInformation) error {
	switch r.format {
	case config.FormatJSON:
		return r.renderJSON(info)
	case config.FormatYAML:
		return r.renderYAML(info)
	default:
		_, err := io.WriteString(r.out, r.renderText(info))
		return err
	}
}

func (r *Renderer) renderJSON(info *lookup.HomeInformation) error {
	b, err := sonic.ConfigStd.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(b))
	return err
}

func (r *Renderer) renderYAML(info *lookup.HomeInformation) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(info); err != nil {
		return fmt.Errorf("encoding YAML report: %w", err)
	}
	return enc.Close()
}

func (r *Renderer) renderText(info *lookup.HomeInformation) string {
	var b strings.Builder

	if r.styled {
		b.WriteString(StyleCard(r.width-2, r.theme).Render(StyleHeader(r.theme).Render(info.Address)))
		b.WriteString("\n")
	}

	b.WriteString(r.header("Property Overview"))
	if r.styled {
		b.WriteString(toMarkdown(info.Overview, r.width))
	} else {
		b.WriteString(info.Overview)
	}
	b.WriteString("\n")

	if info.Details != nil {
		b.WriteString("\n")
		b.WriteString(r.header("Property Details"))
		d := info.Details
		b.WriteString(r.field("Square Feet", formatSquareFeet(d.SquareFeet)))
		b.WriteString(r.field("Bedrooms", formatInt(d.Bedrooms)))
		b.WriteString(r.field("Bathrooms", formatFloat(d.Bathrooms)))
		b.WriteString(r.field("Estimated Value", formatCurrency(d.EstimatedValue)))
		b.WriteString(r.field("Year Built", formatInt(d.YearBuilt)))

		b.WriteString("\n")
		b.WriteString(r.header("Nearby Schools"))
		if len(info.Schools) == 0 {
			b.WriteString(r.muted("No nearby schools found."))
			b.WriteString("\n")
		}
		for _, s := range info.Schools {
			fmt.Fprintf(&b, "%s (%s)\n", r.bold(s.Name), s.Type)
			b.WriteString("  " + r.field("Distance", strconv.FormatFloat(s.Distance, 'f', -1, 64)+" miles"))
			b.WriteString("  " + r.field("Rating", strconv.FormatFloat(s.Rating, 'f', -1, 64)+"/10"))
		}
	}

	return b.String()
}

func (r *Renderer) header(title string) string {
	if r.styled {
		return StyleHeader(r.theme).Render(title) + "\n"
	}
	return title + ":\n"
}

func (r *Renderer) field(label, value string) string {
	if r.styled {
		return StyleLabel(r.theme).Render(label+":") + " " + value + "\n"
	}
	return label + ": " + value + "\n"
}

func (r *Renderer) muted(s string) string {
	if r.styled {
		return StyleMuted(r.theme).Render(s)
	}
	return s
}

func (r *Renderer) bold(s string) string {
	if r.styled {
		return StyleHeader(r.theme).Render(s)
	}
	return s
}

func formatSquareFeet(v *float64) string {
	if v == nil {
		return unknown
	}
	return humanize.Commaf(*v)
}

func formatInt(v *int) string {
	if v == nil {
		return unknown
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return unknown
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatCurrency(v *float64) string {
	if v == nil {
		return unknown
	}
	return "$" + humanize.FormatFloat("#,###.##", *v)
}
