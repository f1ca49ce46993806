package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pomdesc/pomdesc/pkg/descriptor"
)

// browserHeight is the number of dependency rows shown at once.
const browserHeight = 12

// DependencyBrowser is the bubbletea model for interactively inspecting a
// descriptor's dependencies: a scrollable list with a detail pane for the
// selected entry.
type DependencyBrowser struct {
	Descriptor *descriptor.ModuleDescriptor
	Cursor     int
	Offset     int
	styles     styles
}

// NewDependencyBrowser creates a browser over the given descriptor.
func NewDependencyBrowser(d *descriptor.ModuleDescriptor) DependencyBrowser {
	return DependencyBrowser{Descriptor: d, styles: newStyles(false)}
}

func (m DependencyBrowser) Init() tea.Cmd {
	return nil
}

func (m DependencyBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Descriptor.Dependencies)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+browserHeight {
					m.Offset = m.Cursor - browserHeight + 1
				}
			}
		}
	}
	return m, nil
}

func (m DependencyBrowser) View() string {
	st := m.styles
	d := m.Descriptor
	var b strings.Builder

	b.WriteString(st.Title.Render(fmt.Sprintf("%s:%s:%s", d.Group, d.Module, d.Version)))
	b.WriteString("  ")
	b.WriteString(st.statusStyle(string(d.Status)).Render("(" + string(d.Status) + ")"))
	b.WriteString("\n")
	b.WriteString(st.Dim.Render("arrows: navigate  q: quit"))
	b.WriteString("\n\n")

	if len(d.Dependencies) == 0 {
		b.WriteString(st.Dim.Render("no dependencies"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + browserHeight
	if end > len(d.Dependencies) {
		end = len(d.Dependencies)
	}
	for i := m.Offset; i < end; i++ {
		dep := d.Dependencies[i]
		line := dep.Selector.String()
		if i == m.Cursor {
			b.WriteString(st.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView(d.Dependencies[m.Cursor]))

	return b.String()
}

// detailView renders the mappings, exclusions and artifacts of the selected
// dependency.
func (m DependencyBrowser) detailView(dep *descriptor.Dependency) string {
	st := m.styles
	var b strings.Builder

	var rows [][]string
	for _, mapping := range dep.Mappings {
		rows = append(rows, []string{mapping.From, strings.Join(mapping.To, ", ")})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Dim).
		Headers("Configuration", "Maps to").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return st.Conf
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	for _, rule := range dep.Excludes {
		b.WriteString(st.Dim.Render("excludes "))
		b.WriteString(rule.Module.String())
		b.WriteString("\n")
	}
	for _, a := range dep.Artifacts {
		b.WriteString(st.Dim.Render("artifact "))
		b.WriteString(fmt.Sprintf("%s.%s", a.Name, a.Ext))
		if a.Classifier != "" {
			b.WriteString(st.Dim.Render(" classifier " + a.Classifier))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// runBrowser starts the interactive dependency browser and blocks until the
// user quits.
func runBrowser(d *descriptor.ModuleDescriptor) error {
	p := tea.NewProgram(NewDependencyBrowser(d))
	_, err := p.Run()
	return err
}
