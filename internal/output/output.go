// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v2"

	"github.com/staranto/minigrepgo/internal/config"
	"github.com/staranto/minigrepgo/internal/search"
)

// Formats are the accepted values of --output.
var Formats = []string{"text", "table", "json", "yaml"}

// Options controls how Render presents a result set.
type Options struct {
	// One of Formats. Empty means text.
	Format string
	// Query and CaseSensitive are used to highlight occurrences when Color is
	// set.
	Query         string
	CaseSensitive bool
	LineNumbers   bool
	Color         bool
	Titles        bool
	// Count renders only the number of matches.
	Count bool
}

// Render writes matches to w per opts.
func Render(w io.Writer, matches []search.Match, opts Options) error {
	if matches == nil {
		matches = []search.Match{}
	}

	format := opts.Format
	if format == "" {
		format = "text"
	}
	log.Debugf("rendering %d matches as %s", len(matches), format)

	if opts.Count {
		return renderCount(w, len(matches), format)
	}

	switch format {
	case "text":
		return TextWriter(w, matches, opts)
	case "table":
		return TableWriter(w, matches, opts)
	case "json":
		jsonOutput, err := json.Marshal(matches)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(matches)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	default:
		return fmt.Errorf("unsupported output format %q, must be one of %v", format, Formats)
	}
}

func renderCount(w io.Writer, n int, format string) error {
	var err error
	switch format {
	case "json":
		_, err = fmt.Fprintf(w, "{\"count\":%d}\n", n)
	case "yaml":
		_, err = fmt.Fprintf(w, "count: %d\n", n)
	default:
		_, err = fmt.Fprintln(w, n)
	}
	return err
}

// TextWriter writes one matched line per output line, the way grep does.
func TextWriter(w io.Writer, matches []search.Match, opts Options) error {
	numberStyle := lipgloss.NewStyle()
	matchStyle := lipgloss.NewStyle()
	if opts.Color {
		header, _, _ := getColors("colors")
		numberStyle = numberStyle.Foreground(lipgloss.Color(header))
		matchStyle = matchStyle.Foreground(lipgloss.Color(getMatchColor("colors"))).Bold(true)
	}

	for _, m := range matches {
		var b strings.Builder
		if opts.LineNumbers {
			n := strconv.Itoa(m.Number)
			if opts.Color {
				n = numberStyle.Render(n)
			}
			b.WriteString(n)
			b.WriteString(":")
		}

		if opts.Color {
			b.WriteString(Highlight(m.Line, opts.Query, opts.CaseSensitive, matchStyle))
		} else {
			b.WriteString(m.Line)
		}

		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func TableWriter(w io.Writer, matches []search.Match, opts Options) error {
	if len(matches) == 0 {
		return nil
	}

	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	evenRowStyle, oddRowStyle := rowStyles(cellStyle, opts.Color)

	if opts.Color {
		headerColor, _, _ := getColors("colors")
		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
	}

	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{strconv.Itoa(m.Number), m.Line})
	}

	pad, _ := config.GetInt("padding", 1)
	log.Debugf("padding: %v", pad)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("number", "line").BorderHeader(false)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// Highlight renders each occurrence of query in line with style.
func Highlight(line, query string, caseSensitive bool, style lipgloss.Style) string {
	spans := search.Highlights(query, line, caseSensitive)
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(line[last:s[0]])
		b.WriteString(style.Render(line[s[0]:s[1]]))
		last = s[1]
	}
	b.WriteString(line[last:])
	return b.String()
}

// rowStyles returns the even and odd table row styles built on base. Rows
// alternate colors unless colors.stripe is false.
func rowStyles(base lipgloss.Style, color bool) (even lipgloss.Style, odd lipgloss.Style) {
	if !color {
		return base, base
	}

	_, evenColor, oddColor := getColors("colors")
	if stripe, _ := config.GetBool("colors.stripe", true); !stripe {
		oddColor = evenColor
	}

	return base.Foreground(lipgloss.Color(evenColor)), base.Foreground(lipgloss.Color(oddColor))
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// getMatchColor returns the configured color for highlighted occurrences.
func getMatchColor(key string) string {
	match, _ := config.GetString(fmt.Sprintf("%s.match", key), "#ff5f87")
	return match
}
