package pom

import (
	"encoding/xml"
	"os"
	"regexp"
	"strings"

	"github.com/pomdesc/pomdesc/pkg/descriptor"
	"github.com/pomdesc/pomdesc/pkg/errors"
)

// maxSubstitutions caps nested ${...} resolution so property cycles
// terminate instead of looping.
const maxSubstitutions = 10

var propertyRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// Reader wraps one parsed POM and resolves its raw content into the records
// the descriptor builder consumes. A Reader is immutable after Parse and
// safe for concurrent reads.
type Reader struct {
	project  pomProject
	defaults map[descriptor.Key]descriptor.Defaults
}

// Load reads and parses a pom.xml file.
func Load(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading %s", path)
	}
	return Parse(data)
}

// Parse parses POM content. The only validation applied is well-formed XML;
// everything else is treated as already validated upstream.
func Parse(data []byte) (*Reader, error) {
	var project pomProject
	if err := xml.Unmarshal(data, &project); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPOM, err, "malformed pom.xml")
	}

	r := &Reader{project: project}
	r.defaults = r.buildDefaults()
	return r, nil
}

// GroupID returns the module's group, falling back to the parent's group
// when the POM omits it.
func (r *Reader) GroupID() string {
	return r.interpolate(r.rawGroupID())
}

// ArtifactID returns the module's artifact id.
func (r *Reader) ArtifactID() string {
	return r.interpolate(clean(r.project.ArtifactID))
}

// Version returns the module's version, falling back to the parent's
// version when the POM omits it.
func (r *Reader) Version() string {
	return r.interpolate(r.rawVersion())
}

// Description returns the free-text project description.
func (r *Reader) Description() string {
	return clean(r.project.Description)
}

// HomePage returns the project URL.
func (r *Reader) HomePage() string {
	return clean(r.project.URL)
}

// Licenses returns the declared license names.
func (r *Reader) Licenses() []string {
	var names []string
	for _, l := range r.project.Licenses {
		if name := clean(l.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Dependencies returns the declared dependencies in declaration order, with
// properties interpolated.
func (r *Reader) Dependencies() []descriptor.DependencyData {
	deps := make([]descriptor.DependencyData, 0, len(r.project.Dependencies))
	for _, d := range r.project.Dependencies {
		deps = append(deps, descriptor.DependencyData{
			Group:      r.interpolate(clean(d.GroupID)),
			Name:       r.interpolate(clean(d.ArtifactID)),
			Version:    r.interpolate(clean(d.Version)),
			Scope:      r.interpolate(clean(d.Scope)),
			Classifier: r.interpolate(clean(d.Classifier)),
			Type:       r.interpolate(clean(d.Type)),
			Optional:   r.interpolate(clean(d.Optional)) == "true",
			Excludes:   r.excludedModules(d),
		})
	}
	return deps
}

// Relocation returns the relocation target if the POM declares one. Omitted
// relocation fields default to the POM's own coordinates, so a bare
// <relocation><groupId>new.group</groupId></relocation> relocates the module
// under the same name and version.
func (r *Reader) Relocation() (descriptor.Selector, bool) {
	rel := r.project.DistributionManagement.Relocation
	if rel == nil {
		return descriptor.Selector{}, false
	}

	sel := descriptor.Selector{
		Group:   r.GroupID(),
		Name:    r.ArtifactID(),
		Version: r.Version(),
	}
	if g := r.interpolate(clean(rel.GroupID)); g != "" {
		sel.Group = g
	}
	if n := r.interpolate(clean(rel.ArtifactID)); n != "" {
		sel.Name = n
	}
	if v := r.interpolate(clean(rel.Version)); v != "" {
		sel.Version = v
	}
	return sel, true
}

// FindDefaults returns the dependency-management entry for the coordinate
// key. It implements descriptor.DependencyDefaults.
func (r *Reader) FindDefaults(key descriptor.Key) (descriptor.Defaults, bool) {
	d, ok := r.defaults[key]
	return d, ok
}

// buildDefaults indexes the dependencyManagement section by coordinate key.
// A key declared twice keeps the later entry, matching declaration-order
// override behavior within a single POM.
func (r *Reader) buildDefaults() map[descriptor.Key]descriptor.Defaults {
	defaults := make(map[descriptor.Key]descriptor.Defaults, len(r.project.DependencyManagement.Dependencies))
	for _, d := range r.project.DependencyManagement.Dependencies {
		key := descriptor.Key{
			Group:      r.interpolate(clean(d.GroupID)),
			Name:       r.interpolate(clean(d.ArtifactID)),
			Type:       r.interpolate(clean(d.Type)),
			Classifier: r.interpolate(clean(d.Classifier)),
		}
		defaults[key] = descriptor.Defaults{
			Version:  r.interpolate(clean(d.Version)),
			Scope:    r.interpolate(clean(d.Scope)),
			Excludes: r.excludedModules(d),
		}
	}
	return defaults
}

func (r *Reader) excludedModules(d pomDependency) []descriptor.ModuleID {
	if d.Exclusions == nil {
		return nil
	}
	var modules []descriptor.ModuleID
	for _, e := range d.Exclusions.Exclusions {
		modules = append(modules, descriptor.ModuleID{
			Group: r.interpolate(clean(e.GroupID)),
			Name:  r.interpolate(clean(e.ArtifactID)),
		})
	}
	return modules
}

// interpolate resolves ${...} references against the properties section and
// the built-in coordinates. Unresolvable references are left verbatim.
func (r *Reader) interpolate(s string) string {
	for i := 0; i < maxSubstitutions && strings.Contains(s, "${"); i++ {
		replaced := propertyRef.ReplaceAllStringFunc(s, func(ref string) string {
			name := ref[2 : len(ref)-1]
			if v, ok := r.lookupProperty(name); ok {
				return v
			}
			return ref
		})
		if replaced == s {
			break
		}
		s = replaced
	}
	return s
}

func (r *Reader) lookupProperty(name string) (string, bool) {
	switch name {
	case "project.groupId", "pom.groupId", "groupId":
		return r.rawGroupID(), true
	case "project.artifactId", "pom.artifactId", "artifactId":
		return clean(r.project.ArtifactID), true
	case "project.version", "pom.version", "version":
		return r.rawVersion(), true
	case "project.parent.groupId", "parent.groupId":
		if r.project.Parent != nil {
			return clean(r.project.Parent.GroupID), true
		}
	case "project.parent.artifactId", "parent.artifactId":
		if r.project.Parent != nil {
			return clean(r.project.Parent.ArtifactID), true
		}
	case "project.parent.version", "parent.version":
		if r.project.Parent != nil {
			return clean(r.project.Parent.Version), true
		}
	}

	v, ok := r.project.Properties[name]
	return v, ok
}

func (r *Reader) rawGroupID() string {
	if g := clean(r.project.GroupID); g != "" {
		return g
	}
	if r.project.Parent != nil {
		return clean(r.project.Parent.GroupID)
	}
	return ""
}

func (r *Reader) rawVersion() string {
	if v := clean(r.project.Version); v != "" {
		return v
	}
	if r.project.Parent != nil {
		return clean(r.project.Parent.Version)
	}
	return ""
}

func clean(s string) string {
	return strings.TrimSpace(s)
}
