package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/view"
)

// Format selects how a Printer writes values.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json and yaml in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("cli: unknown output format %q (want text, json or yaml)", s)
	}
}

// Printer writes pages and entities in one Format.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a Printer. An empty format means text.
func NewPrinter(w io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatText
	}
	return &Printer{w: w, format: format}
}

// Format returns the printer's output format.
func (p *Printer) Format() Format { return p.format }

// print encodes v for json and yaml, and calls text otherwise.
func (p *Printer) print(v any, text func() string) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(p.w, text())
		return err
	}
}

// Page prints a mounted page.
func (p *Printer) Page(page *view.Page) error {
	out := NewPageOut(page)
	return p.print(out, func() string { return pageText(out) })
}

// User prints the signed-in user.
func (p *Printer) User(u *domain.User) error {
	out := UserOut{ID: u.ID, Name: u.Name, Email: u.Email}
	return p.print(out, func() string { return userText(out) })
}

// Farm prints one farm.
func (p *Printer) Farm(f *domain.Farm) error {
	out := farmOut(*f)
	return p.print(out, func() string { return farmDetails(out) })
}

// Plot prints one plot.
func (p *Printer) Plot(pl *domain.Plot) error {
	out := plotOut(*pl)
	return p.print(out, func() string { return plotDetails(out) })
}

// Row prints one row.
func (p *Printer) Row(r *domain.Row) error {
	out := rowOut(*r)
	return p.print(out, func() string { return rowDetails(out) })
}

// Plant prints one plant.
func (p *Printer) Plant(pl *domain.Plant) error {
	out := plantOut(*pl)
	return p.print(out, func() string { return plantDetails(out) })
}

// Plants prints a batch of plants as a table.
func (p *Printer) Plants(ps []domain.Plant) error {
	out := mapAll(ps, plantOut)
	return p.print(out, func() string { return plantTable(out) + "\n" })
}

// Action prints one logged action.
func (p *Printer) Action(a *domain.Action) error {
	out := actionOut(*a)
	return p.print(out, func() string { return actionTable([]ActionOut{out}) + "\n" })
}

// PossibleActions prints the action catalog.
func (p *Printer) PossibleActions(list []domain.PossibleAction) error {
	type entry struct {
		ID   string `json:"id"   yaml:"id"`
		Name string `json:"name" yaml:"name"`
	}
	out := make([]entry, len(list))
	rows := make([][]string, len(list))
	for i, pa := range list {
		out[i] = entry{ID: pa.ID, Name: pa.Name}
		rows[i] = []string{pa.ID, pa.Name}
	}
	return p.print(out, func() string {
		if len(rows) == 0 {
			return mutedStyle.Render("No actions in the catalog.") + "\n"
		}
		return renderTable([]string{"ID", "NAME"}, rows) + "\n"
	})
}

// Message prints a one-line notice. Structured formats get {"message": ...}.
func (p *Printer) Message(msg string) error {
	return p.print(map[string]string{"message": msg}, func() string {
		return successStyle.Render(msg) + "\n"
	})
}
