package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pomdesc/pomdesc/pkg/descriptor"
	"github.com/pomdesc/pomdesc/pkg/errors"
	"github.com/pomdesc/pomdesc/pkg/maven"
	"github.com/pomdesc/pomdesc/pkg/pom"
)

// describeOpts holds the command-line flags for the describe command.
type describeOpts struct {
	format      string // "text" or "json"; empty uses the config default
	output      string // output file path (stdout if empty)
	interactive bool   // browse dependencies in a TUI instead of printing
}

// describeCommand creates the describe command: translate one pom.xml and
// print the resulting module descriptor.
func (c *CLI) describeCommand() *cobra.Command {
	var opts describeOpts

	cmd := &cobra.Command{
		Use:   "describe <pom.xml>",
		Short: "Translate a POM into its resolver-ready module descriptor",
		Long: `Translate a Maven project descriptor into a normalized module descriptor.

The output shows the module identity and status, the fixed configuration
catalog, and every dependency with its configuration mappings, exclusion
rules and artifact overrides.

Examples:
  pomdesc describe pom.xml
  pomdesc describe --format json pom.xml
  pomdesc describe -i pom.xml          # interactive dependency browser`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDescribe(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text or json (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse dependencies interactively")

	return cmd
}

func (c *CLI) runDescribe(ctx context.Context, path string, opts describeOpts) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	desc, err := translatePOM(ctx, path)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Translated %d dependencies", len(desc.Dependencies)))

	if opts.interactive {
		return runBrowser(desc)
	}

	format := opts.format
	if format == "" {
		format = c.Config.Format
	}

	var out []byte
	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encoding descriptor")
		}
		out = append(out, '\n')
	case FormatText:
		out = []byte(renderDescriptor(desc, c.Config))
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want text or json)", format)
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(opts.output, out, 0644)
}

// translatePOM runs the full translation: read the POM, feed it through a
// descriptor builder with the reader as dependency-management lookup, and
// register the relocation target if the POM declares one.
func translatePOM(ctx context.Context, path string) (*descriptor.ModuleDescriptor, error) {
	logger := loggerFromContext(ctx)

	r, err := pom.Load(path)
	if err != nil {
		return nil, err
	}

	b := descriptor.NewBuilder(r, maven.Translator{})
	b.SetIdentity(r.GroupID(), r.ArtifactID(), r.Version())
	b.SetDescription(r.Description())
	b.SetHomePage(r.HomePage())
	b.SetLicenses(r.Licenses())

	for _, dep := range r.Dependencies() {
		if dep.Scope != "" && !descriptor.KnownScope(dep.Scope) {
			logger.Debugf("unknown scope %q on %s:%s, defaulting to compile", dep.Scope, dep.Group, dep.Name)
		}
		if err := b.AddDependency(dep); err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnresolvedVersion, err, "translating %s", path)
		}
	}

	if rel, ok := r.Relocation(); ok {
		logger.Debugf("module relocated to %s", rel)
		b.AddDependencyForRelocation(rel.Group, rel.Name, rel.Version)
	}

	return b.Descriptor(), nil
}
