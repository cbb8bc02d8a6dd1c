// Package render formats aggregated search results into the document shown in
// the pager.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Timmy6942025/pd/internal/search"
)

// Basic ANSI palette indexes, so the escapes stay within what less -R passes.
const (
	colorRed   = lipgloss.Color("1")
	colorGreen = lipgloss.Color("2")
	colorBlue  = lipgloss.Color("4")
)

type category struct {
	label string
	style lipgloss.Style
}

// Renderer builds the paged document. Its styles are bound to a fixed color
// profile because the output goes into a pipe, not straight to a terminal.
type Renderer struct {
	bold      lipgloss.Style
	system    category
	user      category
	sandboxed category
}

// New returns a Renderer emitting ANSI bold and color escapes, or plain text
// when color is false.
func New(color bool) *Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	bold := r.NewStyle().Bold(true)
	return &Renderer{
		bold:      bold,
		system:    category{label: "System", style: bold.Foreground(colorBlue)},
		user:      category{label: "User", style: bold.Foreground(colorRed)},
		sandboxed: category{label: "Sandboxed", style: bold.Foreground(colorGreen)},
	}
}

// Render returns the full document: a summary line, then one section per
// non-empty source. Every '~' becomes a space; some description producers use
// it to stand in for spaces.
func (r *Renderer) Render(res search.Results) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s | %s %s | %s %s\n\n",
		r.bold.Render(r.system.label+":"), PackageCount(len(res.System)),
		r.bold.Render(r.user.label+":"), PackageCount(len(res.User)),
		r.bold.Render(r.sandboxed.label+":"), PackageCount(len(res.Sandboxed)),
	)

	r.writeSection(&b, r.system, res.System)
	r.writeSection(&b, r.user, res.User)
	r.writeSection(&b, r.sandboxed, res.Sandboxed)

	return strings.ReplaceAll(b.String(), "~", " ")
}

func (r *Renderer) writeSection(b *strings.Builder, c category, records []search.Record) {
	if len(records) == 0 {
		return
	}
	b.WriteString(r.bold.Render(c.label + " Results:"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(c.label)+9))
	b.WriteString("\n")
	for _, rec := range records {
		b.WriteString(c.style.Render(rec.Name))
		b.WriteString("\n  ")
		b.WriteString(rec.Description)
		b.WriteString("\n\n")
	}
}

// PackageCount formats n as "1 package" or "<n> packages".
func PackageCount(n int) string {
	if n == 1 {
		return "1 package"
	}
	return fmt.Sprintf("%d packages", n)
}
