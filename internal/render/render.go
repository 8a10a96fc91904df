package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/samvad-hq/urbandict/pkg/urban"
)

// Output formats understood by New.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes lookup results to out in one format.
type Renderer struct {
	out    io.Writer
	format string

	word  *color.Color
	label *color.Color
	faint *color.Color
}

// New builds a Renderer. Colors only apply to the text format.
func New(out io.Writer, format string, noColor bool) (*Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "":
		format = FormatText
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	r := &Renderer{
		out:    out,
		format: format,
		word:   color.New(color.Bold, color.FgCyan),
		label:  color.New(color.FgYellow),
		faint:  color.New(color.Faint),
	}
	if noColor {
		r.word.DisableColor()
		r.label.DisableColor()
		r.faint.DisableColor()
	}
	return r, nil
}

// Entries writes entries in service order.
func (r *Renderer) Entries(entries []urban.Entry) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(entries)
	case FormatYAML:
		return r.writeYAML(entries)
	}

	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(r.out); err != nil {
				return err
			}
		}
		if err := r.entryText(e); err != nil {
			return fmt.Errorf("render entry %d: %w", e.DefID, err)
		}
	}
	return nil
}

type tooltipView struct {
	Term    string `json:"term" yaml:"term"`
	Tooltip string `json:"tooltip" yaml:"tooltip"`
}

// Tooltip writes tooltip text for term. Unless keepHTML is set, markup is
// reduced to plain text.
func (r *Renderer) Tooltip(term, tooltip string, keepHTML bool) error {
	if !keepHTML {
		plain, err := PlainText(tooltip)
		if err != nil {
			return fmt.Errorf("strip tooltip html: %w", err)
		}
		tooltip = plain
	}

	switch r.format {
	case FormatJSON:
		return r.writeJSON(tooltipView{Term: term, Tooltip: tooltip})
	case FormatYAML:
		return r.writeYAML(tooltipView{Term: term, Tooltip: tooltip})
	}
	_, err := fmt.Fprintln(r.out, tooltip)
	return err
}

func (r *Renderer) entryText(e urban.Entry) error {
	var b strings.Builder

	b.WriteString(r.word.Sprint(e.Word))
	b.WriteString(r.faint.Sprintf(" (#%d)", e.DefID))
	b.WriteString("\n")
	writeIndented(&b, StripLinks(e.Definition))
	if ex := StripLinks(e.Example); ex != "" {
		b.WriteString("  " + r.label.Sprint("Example:") + "\n")
		writeIndented(&b, ex)
	}
	fmt.Fprintf(&b, "  +%d / -%d  by %s on %s\n", e.ThumbsUp, e.ThumbsDown, e.Author, writtenDate(e))
	if e.Permalink != "" {
		b.WriteString("  " + r.faint.Sprint(e.Permalink) + "\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) writeYAML(v any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeIndented(b *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func writtenDate(e urban.Entry) string {
	t, err := e.WrittenAt()
	if err != nil {
		return e.WrittenOn
	}
	return t.Format("2006-01-02")
}

// StripLinks removes the square brackets the service uses to mark
// cross-references and normalizes line endings.
func StripLinks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.NewReplacer("[", "", "]", "").Replace(strings.TrimSpace(s))
}

// PlainText returns the text content of an HTML fragment with whitespace collapsed.
func PlainText(fragment string) (string, error) {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.Join(strings.Fields(fragment), " "), nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	doc.Find("br").ReplaceWithHtml(" ")
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
