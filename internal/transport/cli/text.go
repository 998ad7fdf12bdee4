package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/heartmarshall/farmdash/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)

	// ErrorStyle renders the final error line of a failed command.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	statusColors = map[string]lipgloss.Color{
		domain.PlantStatusHealthy.String():        lipgloss.Color("2"),
		domain.PlantStatusDiseased.String():       lipgloss.Color("1"),
		domain.PlantStatusNeedsAttention.String(): lipgloss.Color("3"),
	}
)

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func status(s string) string {
	if c, ok := statusColors[s]; ok {
		return lipgloss.NewStyle().Foreground(c).Render(s)
	}
	return s
}

type field struct{ label, value string }

func details(title string, fields ...field) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, f := range fields {
		b.WriteString("\n" + labelStyle.Render(f.label) + f.value)
	}
	return b.String()
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func section(name string, count int, body string) string {
	head := sectionStyle.Render(fmt.Sprintf("%s (%d)", name, count))
	if count == 0 {
		return head + "\n" + mutedStyle.Render("None yet.")
	}
	return head + "\n" + body
}

func farmDetails(f FarmOut) string {
	return details("Farm "+f.Name,
		field{"ID", f.ID},
		field{"Location", f.Location},
		field{"Area", num(f.Area) + " ha"},
		field{"Created", date(f.CreatedAt)},
	) + "\n"
}

func plotDetails(p PlotOut) string {
	polygon := p.Polygon
	if polygon == "" {
		polygon = "-"
	}
	return details("Plot "+p.Name,
		field{"ID", p.ID},
		field{"Area", num(p.Area) + " m²"},
		field{"Coordinates", p.Coordinates},
		field{"Polygon", polygon},
		field{"Created", date(p.CreatedAt)},
	) + "\n"
}

func rowDetails(r RowOut) string {
	return details("Row "+r.Name,
		field{"ID", r.ID},
		field{"Length", num(r.Length) + " m"},
		field{"Width", num(r.Width) + " m"},
		field{"Created", date(r.CreatedAt)},
	) + "\n"
}

func plantDetails(p PlantOut) string {
	return details("Plant "+p.Identifier,
		field{"ID", p.ID},
		field{"Species", speciesName(p)},
		field{"Status", status(p.Status)},
		field{"Position", strconv.Itoa(p.Position)},
		field{"Created", date(p.CreatedAt)},
		field{"Updated", date(p.UpdatedAt)},
	) + "\n"
}

func speciesName(p PlantOut) string {
	switch {
	case p.SpeciesCommonName != "" && p.SpeciesScientificName != "":
		return p.SpeciesCommonName + " (" + p.SpeciesScientificName + ")"
	case p.SpeciesCommonName != "":
		return p.SpeciesCommonName
	default:
		return p.SpeciesID
	}
}

func farmTable(fs []FarmOut) string {
	rows := make([][]string, len(fs))
	for i, f := range fs {
		rows[i] = []string{f.ID, f.Name, f.Location, num(f.Area)}
	}
	return renderTable([]string{"ID", "NAME", "LOCATION", "AREA (HA)"}, rows)
}

func plotTable(ps []PlotOut) string {
	rows := make([][]string, len(ps))
	for i, p := range ps {
		rows[i] = []string{p.ID, p.Name, num(p.Area), p.Coordinates}
	}
	return renderTable([]string{"ID", "NAME", "AREA (M²)", "COORDINATES"}, rows)
}

func rowTable(rs []RowOut) string {
	rows := make([][]string, len(rs))
	for i, r := range rs {
		rows[i] = []string{r.ID, r.Name, num(r.Length), num(r.Width)}
	}
	return renderTable([]string{"ID", "NAME", "LENGTH (M)", "WIDTH (M)"}, rows)
}

func plantTable(ps []PlantOut) string {
	rows := make([][]string, len(ps))
	for i, p := range ps {
		rows[i] = []string{p.ID, p.Identifier, speciesName(p), status(p.Status), strconv.Itoa(p.Position)}
	}
	return renderTable([]string{"ID", "IDENTIFIER", "SPECIES", "STATUS", "POSITION"}, rows)
}

func actionTable(as []ActionOut) string {
	rows := make([][]string, len(as))
	for i, a := range as {
		rows[i] = []string{date(a.CreatedAt), a.Action, a.Description}
	}
	return renderTable([]string{"WHEN", "ACTION", "DESCRIPTION"}, rows)
}

func pageText(p PageOut) string {
	var parts []string
	switch p.Kind {
	case "dashboard":
		parts = append(parts, titleStyle.Render("Farms"),
			section("Farms", len(p.Farms), farmTable(p.Farms)))
	case "farm":
		parts = append(parts, farmDetails(*p.Farm),
			section("Plots", len(p.Plots), plotTable(p.Plots)))
	case "plot":
		parts = append(parts, plotDetails(*p.Plot),
			section("Rows", len(p.Rows), rowTable(p.Rows)),
			section("Actions", len(p.Actions), actionTable(p.Actions)))
	case "row":
		parts = append(parts, rowDetails(*p.Row),
			section("Plants", len(p.Plants), plantTable(p.Plants)),
			section("Actions", len(p.Actions), actionTable(p.Actions)))
	case "plant":
		location := fmt.Sprintf("%s / %s / %s", p.Farm.Name, p.Plot.Name, p.Row.Name)
		parts = append(parts, plantDetails(*p.Plant),
			labelStyle.Render("Location")+location,
			section("Timeline", len(p.Actions), actionTable(p.Actions)))
	}
	parts = append(parts, mutedStyle.Render(p.Path))
	return strings.Join(parts, "\n") + "\n"
}

func userText(u UserOut) string {
	return details("Signed in",
		field{"Name", u.Name},
		field{"Email", u.Email},
		field{"ID", u.ID},
	) + "\n"
}
