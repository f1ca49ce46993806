package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/pomdesc/pomdesc/pkg/descriptor"
	"github.com/pomdesc/pomdesc/pkg/errors"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output string // output file; extension selects dot or svg
	deps   bool   // include dependency nodes, not just the configuration catalog
}

// graphCommand creates the graph command: export the configuration graph of
// a POM's descriptor as Graphviz DOT or rendered SVG.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <pom.xml>",
		Short: "Export the configuration graph as DOT or SVG",
		Long: `Export the descriptor's configuration extends-graph as Graphviz DOT,
optionally with the dependencies attached to the configurations they map from.

The output format follows the file extension of --output: .svg renders with
Graphviz, anything else (or stdout) emits DOT text.

Examples:
  pomdesc graph pom.xml                    # DOT to stdout
  pomdesc graph --deps -o graph.svg pom.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.deps, "deps", false, "include dependency nodes")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, path string, opts graphOpts) error {
	desc, err := translatePOM(ctx, path)
	if err != nil {
		return err
	}

	dot := descriptorDOT(desc, opts.deps)

	if opts.output == "" {
		_, err = os.Stdout.WriteString(dot)
		return err
	}

	if strings.EqualFold(filepath.Ext(opts.output), ".svg") {
		svg, err := renderSVG(ctx, dot)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "rendering %s", opts.output)
		}
		return os.WriteFile(opts.output, svg, 0644)
	}
	return os.WriteFile(opts.output, []byte(dot), 0644)
}

// descriptorDOT returns a Graphviz DOT digraph of the descriptor: one node
// per configuration with extends edges, and optionally one node per
// dependency with an edge from each configuration it is declared in.
func descriptorDOT(d *descriptor.ModuleDescriptor, includeDeps bool) string {
	var buf bytes.Buffer
	buf.WriteString("digraph configurations {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled, fillcolor=white];\n\n")

	for _, conf := range d.Configurations {
		shape := "ellipse"
		if conf.Visibility == descriptor.VisibilityPrivate {
			shape = "box"
		}
		fmt.Fprintf(&buf, "  %q [shape=%s];\n", conf.Name, shape)
		for _, parent := range conf.Extends {
			fmt.Fprintf(&buf, "  %q -> %q;\n", conf.Name, parent)
		}
	}

	if includeDeps {
		buf.WriteString("\n")
		for i, dep := range d.Dependencies {
			id := fmt.Sprintf("dep%d", i)
			fmt.Fprintf(&buf, "  %s [label=%q, shape=box, style=\"filled,rounded\"];\n", id, dep.Selector.String())
			for _, conf := range dep.DeclaringConfs() {
				fmt.Fprintf(&buf, "  %s -> %q;\n", id, conf)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// renderSVG renders DOT text to SVG using Graphviz.
func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
