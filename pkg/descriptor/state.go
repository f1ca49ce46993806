package descriptor

import "fmt"

// Status classifies a module version for the resolver.
type Status string

const (
	// StatusRelease marks a fixed, published version.
	StatusRelease Status = "release"

	// StatusIntegration marks a changing version (SNAPSHOT).
	StatusIntegration Status = "integration"
)

// Visibility controls whether a configuration is part of the module's
// public surface or internal to it.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// MatchAny is the wildcard used by exclude rules for the artifact, type and
// extension dimensions: any value matches.
const MatchAny = "*"

// ModuleID identifies a module by group and name, without a version.
type ModuleID struct {
	Group string `json:"group"`
	Name  string `json:"name"`
}

func (m ModuleID) String() string {
	return m.Group + ":" + m.Name
}

// Selector addresses a dependency target: a module plus a version selector
// string in the target system's notation (exact version, range, or dynamic
// selector such as "latest.release").
type Selector struct {
	Group   string `json:"group"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (s Selector) String() string {
	return fmt.Sprintf("%s:%s:%s", s.Group, s.Name, s.Version)
}

// Configuration is a named usage bucket into which dependencies and
// artifacts are classified. Configurations form an inheritance graph via
// Extends: a configuration includes everything mapped into the
// configurations it extends.
type Configuration struct {
	Name        string     `json:"name"`
	Visibility  Visibility `json:"visibility"`
	Description string     `json:"description,omitempty"`
	Extends     []string   `json:"extends,omitempty"`
	Transitive  bool       `json:"transitive"`
}

// ConfMapping associates a declaring configuration with the target
// configuration patterns it maps to in the dependency's own configuration
// space, e.g. compile -> [compile(*), master(*)].
type ConfMapping struct {
	From string   `json:"from"`
	To   []string `json:"to"`
}

// ExcludeRule suppresses a transitive module underneath a dependency. The
// module id is matched exactly; artifact, type and extension are wildcards.
// The rule applies in every configuration the owning dependency was mapped
// into.
type ExcludeRule struct {
	Module         ModuleID `json:"module"`
	Artifact       string   `json:"artifact"`
	Type           string   `json:"type"`
	Ext            string   `json:"ext"`
	Configurations []string `json:"configurations"`
}

// Artifact is a dependency artifact override, synthesized when a POM
// dependency declares a classifier or a non-jar type.
type Artifact struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Ext            string   `json:"ext"`
	Classifier     string   `json:"classifier,omitempty"`
	Configurations []string `json:"configurations"`
}

// Dependency is one declared POM dependency after translation: the target
// selector, the ordered configuration mappings produced by its scope, and
// any exclude rules and artifact overrides attached to it.
type Dependency struct {
	Selector  Selector      `json:"selector"`
	Mappings  []ConfMapping `json:"mappings,omitempty"`
	Excludes  []ExcludeRule `json:"excludes,omitempty"`
	Artifacts []Artifact    `json:"artifacts,omitempty"`
}

// addMapping records a declaring->target configuration entry, preserving
// first-seen order of declaring configurations.
func (d *Dependency) addMapping(from, to string) {
	for i := range d.Mappings {
		if d.Mappings[i].From == from {
			d.Mappings[i].To = append(d.Mappings[i].To, to)
			return
		}
	}
	d.Mappings = append(d.Mappings, ConfMapping{From: from, To: []string{to}})
}

// DeclaringConfs returns the declaring configuration names in mapping order.
func (d *Dependency) DeclaringConfs() []string {
	confs := make([]string, len(d.Mappings))
	for i, m := range d.Mappings {
		confs[i] = m.From
	}
	return confs
}

// TargetsOf returns the target patterns mapped from the given declaring
// configuration, or nil if the dependency does not map from it.
func (d *Dependency) TargetsOf(from string) []string {
	for _, m := range d.Mappings {
		if m.From == from {
			return m.To
		}
	}
	return nil
}

// ModuleDescriptor is the finished, resolver-ready module description:
// identity, status, the fixed configuration catalog, and the dependencies in
// declaration order. It is mutated only through a Builder; once handed to a
// resolver it must be treated as immutable.
type ModuleDescriptor struct {
	Group          string          `json:"group"`
	Module         string          `json:"module"`
	Version        string          `json:"version"`
	Status         Status          `json:"status"`
	Description    string          `json:"description,omitempty"`
	Configurations []Configuration `json:"configurations"`
	Dependencies   []*Dependency   `json:"dependencies"`
}

// ID returns the descriptor's own module id.
func (m *ModuleDescriptor) ID() ModuleID {
	return ModuleID{Group: m.Group, Name: m.Module}
}

// Configuration looks up a configuration from the catalog by name.
func (m *ModuleDescriptor) Configuration(name string) (Configuration, bool) {
	for _, c := range m.Configurations {
		if c.Name == name {
			return c, true
		}
	}
	return Configuration{}, false
}

func (m *ModuleDescriptor) addDependency(sel Selector) *Dependency {
	d := &Dependency{Selector: sel}
	m.Dependencies = append(m.Dependencies, d)
	return d
}
