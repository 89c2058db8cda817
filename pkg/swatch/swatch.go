// Package swatch renders the "what styles are available" report: every
// directive and every configured style alias, each with a styled
// sample.
package swatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/tinge/pkg/escape"
	"github.com/arthur-debert/tinge/pkg/markup"
)

const sampleText = "the quick brown fox"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	nameStyle = lipgloss.NewStyle().Width(16)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Renderer produces the styles report in some output form.
type Renderer interface {
	RenderStyleList(styles map[string][]string) string
}

// TerminalRenderer renders the report with lipgloss chrome and live
// samples composed through the core.
type TerminalRenderer struct{}

// NewTerminalRenderer creates a renderer for styled terminals.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderStyleList lists directives and style aliases with samples.
func (r *TerminalRenderer) RenderStyleList(styles map[string][]string) string {
	var result strings.Builder

	result.WriteString(titleStyle.Render("Directives") + "\n\n")
	for _, name := range escape.Names() {
		sample := markup.Compose(markup.Directive(name), markup.Text(sampleText))
		result.WriteString(fmt.Sprintf("  %s %s\n", nameStyle.Render(name), sample))
	}

	result.WriteString("\n" + titleStyle.Render("Styles") + "\n\n")
	if len(styles) == 0 {
		result.WriteString("  " + mutedStyle.Render("No styles configured") + "\n")
		return strings.TrimRight(result.String(), "\n")
	}

	for _, name := range sortedNames(styles) {
		sample := markup.Compose(markup.Directive(name), markup.Text(sampleText))
		expansion := mutedStyle.Render(strings.Join(styles[name], " "))
		result.WriteString(fmt.Sprintf("  %s %s  %s\n", nameStyle.Render(name), sample, expansion))
	}

	return strings.TrimRight(result.String(), "\n")
}

// PlainRenderer renders the report without any styling, for pipes and
// NO_COLOR environments.
type PlainRenderer struct{}

// NewPlainRenderer creates a renderer for plain output.
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderStyleList lists directive and style names only.
func (r *PlainRenderer) RenderStyleList(styles map[string][]string) string {
	var result strings.Builder

	result.WriteString("Directives:\n")
	for _, name := range escape.Names() {
		result.WriteString(fmt.Sprintf("  %s\n", name))
	}

	result.WriteString("Styles:\n")
	if len(styles) == 0 {
		result.WriteString("  (none configured)\n")
	}
	for _, name := range sortedNames(styles) {
		result.WriteString(fmt.Sprintf("  %s: %s\n", name, strings.Join(styles[name], " ")))
	}

	return strings.TrimRight(result.String(), "\n")
}

func sortedNames(styles map[string][]string) []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
