package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pomdesc/pomdesc/pkg/descriptor"
)

// renderDescriptor formats a module descriptor as human-readable text:
// identity header, the configuration catalog as a table, and each dependency
// with its configuration mappings, exclusions and artifact overrides.
func renderDescriptor(d *descriptor.ModuleDescriptor, cfg Config) string {
	st := newStyles(cfg.NoColor)
	var b strings.Builder

	b.WriteString(st.Title.Render(fmt.Sprintf("%s:%s:%s", d.Group, d.Module, d.Version)))
	b.WriteString("  ")
	b.WriteString(st.statusStyle(string(d.Status)).Render("(" + string(d.Status) + ")"))
	b.WriteString("\n")
	if d.Description != "" {
		b.WriteString(st.Dim.Render(d.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(st.Title.Render("Configurations"))
	b.WriteString("\n")
	b.WriteString(configurationTable(d, cfg, st))
	b.WriteString("\n\n")

	b.WriteString(st.Title.Render(fmt.Sprintf("Dependencies (%d)", len(d.Dependencies))))
	b.WriteString("\n")
	if len(d.Dependencies) == 0 {
		b.WriteString(st.Dim.Render("  none"))
		b.WriteString("\n")
	}
	for _, dep := range d.Dependencies {
		b.WriteString(renderDependency(dep, st))
	}

	return b.String()
}

func configurationTable(d *descriptor.ModuleDescriptor, cfg Config, st styles) string {
	headers := []string{"Name", "Visibility", "Extends"}
	if cfg.ShowDescriptions {
		headers = append(headers, "Description")
	}

	var rows [][]string
	for _, conf := range d.Configurations {
		row := []string{conf.Name, string(conf.Visibility), strings.Join(conf.Extends, ", ")}
		if cfg.ShowDescriptions {
			row = append(row, conf.Description)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Dim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return st.Conf
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}

func renderDependency(dep *descriptor.Dependency, st styles) string {
	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(st.Value.Render(dep.Selector.String()))
	b.WriteString("\n")

	for _, m := range dep.Mappings {
		b.WriteString("    ")
		b.WriteString(st.Conf.Render(m.From))
		b.WriteString(st.Dim.Render(" -> "))
		b.WriteString(strings.Join(m.To, ", "))
		b.WriteString("\n")
	}
	for _, rule := range dep.Excludes {
		b.WriteString("    ")
		b.WriteString(st.Dim.Render("excludes "))
		b.WriteString(rule.Module.String())
		b.WriteString(st.Dim.Render(fmt.Sprintf(" (%s)", strings.Join(rule.Configurations, ", "))))
		b.WriteString("\n")
	}
	for _, a := range dep.Artifacts {
		b.WriteString("    ")
		b.WriteString(st.Dim.Render("artifact "))
		b.WriteString(fmt.Sprintf("%s.%s", a.Name, a.Ext))
		detail := "type " + a.Type
		if a.Classifier != "" {
			detail += ", classifier " + a.Classifier
		}
		b.WriteString(st.Dim.Render(fmt.Sprintf(" (%s) in %s", detail, strings.Join(a.Configurations, ", "))))
		b.WriteString("\n")
	}

	return b.String()
}
