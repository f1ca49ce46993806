package descriptor

import (
	"fmt"
	"regexp"
	"strings"
)

// Key identifies a declared dependency for dependency-management lookup.
// Maven keys managed defaults by the full coordinate including type and
// classifier, so two classifiers of the same module can carry different
// defaults.
type Key struct {
	Group      string
	Name       string
	Type       string
	Classifier string
}

func (k Key) String() string {
	s := k.Group + ":" + k.Name
	if k.Type != "" {
		s += ":" + k.Type
	}
	if k.Classifier != "" {
		s += ":" + k.Classifier
	}
	return s
}

// Defaults are the dependency-management fallbacks inherited when a declared
// dependency omits a field. Empty fields mean "no default".
type Defaults struct {
	Version  string
	Scope    string
	Excludes []ModuleID
}

// DependencyDefaults supplies dependency-management defaults by coordinate
// key. Implemented by the POM reader; a nil lookup behaves as "never found".
type DependencyDefaults interface {
	FindDefaults(key Key) (Defaults, bool)
}

// VersionTranslator converts a version string from Maven notation into the
// selector notation of the target model. It is a pure syntax bridge, not a
// resolution step.
type VersionTranslator interface {
	Translate(mavenVersion string) string
}

// DependencyData is one declared POM dependency as produced by the reader,
// with properties already interpolated. Empty strings mean the POM omitted
// the field.
type DependencyData struct {
	Group      string
	Name       string
	Version    string
	Scope      string
	Classifier string
	Type       string
	Optional   bool
	Excludes   []ModuleID
}

// Key returns the dependency-management lookup key for the dependency.
func (d DependencyData) Key() Key {
	return Key{Group: d.Group, Name: d.Name, Type: d.Type, Classifier: d.Classifier}
}

// UnresolvedVersionError reports a dependency with no declared version and
// no dependency-management default. This is the only fatal condition during
// descriptor building; the POM cannot be translated without a version.
type UnresolvedVersionError struct {
	Group string
	Name  string
}

func (e *UnresolvedVersionError) Error() string {
	return fmt.Sprintf("unable to resolve version for dependency %s:%s: not declared and no dependency management default found", e.Group, e.Name)
}

// timestampedSnapshot matches versions of deployed snapshots, e.g.
// "1.0-20230101.120000-5". They are normalized back to "1.0-SNAPSHOT".
var timestampedSnapshot = regexp.MustCompile(`^(.+)-\d{8}\.\d{6}-\d+$`)

// Builder constructs one ModuleDescriptor from parsed POM data. Create one
// builder per POM; a builder is single-threaded and holds the descriptor
// under construction as its only state.
type Builder struct {
	defaults   DependencyDefaults
	translator VersionTranslator
	desc       *ModuleDescriptor
}

// NewBuilder returns a builder using the given dependency-management lookup
// and version translator. The lookup may be nil when the POM has no
// dependency-management section.
func NewBuilder(defaults DependencyDefaults, translator VersionTranslator) *Builder {
	return &Builder{defaults: defaults, translator: translator}
}

// Descriptor returns the descriptor built so far.
func (b *Builder) Descriptor() *ModuleDescriptor {
	return b.desc
}

// SetIdentity initializes the descriptor with the module's coordinates and
// registers the standard configuration catalog. Timestamped snapshot
// versions are normalized to their -SNAPSHOT form; the normalized version is
// the effective version used everywhere else, including the self-dependency
// check. Status is "integration" for snapshot versions, "release" otherwise.
func (b *Builder) SetIdentity(group, module, version string) {
	effective := version
	if m := timestampedSnapshot.FindStringSubmatch(version); m != nil {
		effective = m[1] + "-SNAPSHOT"
	}

	status := StatusRelease
	if strings.HasSuffix(effective, "SNAPSHOT") {
		status = StatusIntegration
	}

	b.desc = &ModuleDescriptor{
		Group:          group,
		Module:         module,
		Version:        effective,
		Status:         status,
		Configurations: StandardConfigurations(),
	}
}

// SetDescription stores the module's free-text description.
func (b *Builder) SetDescription(text string) {
	b.desc.Description = text
}

// SetHomePage is accepted for intake symmetry with the reader; the home page
// is not part of the descriptor model.
func (b *Builder) SetHomePage(url string) {}

// SetLicenses is accepted for intake symmetry with the reader; licenses are
// not part of the descriptor model.
func (b *Builder) SetLicenses(licenses []string) {}

// AddDependency translates one declared dependency and registers it on the
// descriptor: scope resolution, version resolution with dependency-management
// fallback, version-selector translation, configuration mapping, artifact
// inference and exclusion rules.
//
// A dependency on the module itself is silently dropped; some published POMs
// depend on themselves and the target model does not allow that. The only
// error returned is *UnresolvedVersionError.
func (b *Builder) AddDependency(dep DependencyData) error {
	scope := dep.Scope
	if scope != "" && !KnownScope(scope) {
		// unknown scope, defaulting to 'compile'
		scope = string(ScopeCompile)
	}

	version, err := b.resolveVersion(dep)
	if err != nil {
		return err
	}
	sel := Selector{Group: dep.Group, Name: dep.Name, Version: b.translator.Translate(version)}

	if sel.Group == b.desc.Group && sel.Name == b.desc.Module {
		return nil
	}

	d := b.desc.addDependency(sel)
	if scope == "" {
		scope = b.defaultScope(dep)
	}
	for _, p := range Scope(scope).confMappings(dep.Optional) {
		d.addMapping(p.from, p.to)
	}

	hasClassifier := dep.Classifier != ""
	hasNonJarType := dep.Type != "" && dep.Type != "jar"
	if hasClassifier || hasNonJarType {
		typ := "jar"
		if dep.Type != "" {
			typ = dep.Type
		}
		classifier := dep.Classifier
		if classifier == "" {
			classifier = classifierForType(typ)
		}
		conf := scope
		if dep.Optional {
			conf = ConfOptional
		}
		d.Artifacts = append(d.Artifacts, Artifact{
			Name:           sel.Name,
			Type:           typ,
			Ext:            extensionForType(typ),
			Classifier:     classifier,
			Configurations: []string{conf},
		})
	}

	// Excluded modules are inherited from dependency management when the
	// declared exclusions element is missing or present but empty.
	excluded := dep.Excludes
	if len(excluded) == 0 {
		excluded = b.defaultExcludes(dep)
	}
	for _, mod := range excluded {
		d.Excludes = append(d.Excludes, ExcludeRule{
			Module:         mod,
			Artifact:       MatchAny,
			Type:           MatchAny,
			Ext:            MatchAny,
			Configurations: d.DeclaringConfs(),
		})
	}

	return nil
}

// AddDependencyForRelocation registers the relocation target of a POM as a
// dependency mapped onto every public configuration, each to itself. A
// relocation back onto the module's own coordinates is dropped just like a
// self-dependency.
func (b *Builder) AddDependencyForRelocation(group, name, version string) {
	if group == b.desc.Group && name == b.desc.Module {
		return
	}

	d := b.desc.addDependency(Selector{Group: group, Name: name, Version: version})
	for _, conf := range b.desc.Configurations {
		if conf.Visibility == VisibilityPublic {
			d.addMapping(conf.Name, conf.Name)
		}
	}
}

// resolveVersion returns the declared version, falling back to the
// dependency-management default. Having neither is fatal.
func (b *Builder) resolveVersion(dep DependencyData) (string, error) {
	if dep.Version != "" {
		return dep.Version, nil
	}
	if def, ok := b.findDefaults(dep); ok && def.Version != "" {
		return def.Version, nil
	}
	return "", &UnresolvedVersionError{Group: dep.Group, Name: dep.Name}
}

// defaultScope returns the managed default scope for the dependency,
// coerced to compile when absent or unrecognized.
func (b *Builder) defaultScope(dep DependencyData) string {
	def, ok := b.findDefaults(dep)
	if !ok || !KnownScope(def.Scope) {
		return string(ScopeCompile)
	}
	return def.Scope
}

func (b *Builder) defaultExcludes(dep DependencyData) []ModuleID {
	if def, ok := b.findDefaults(dep); ok {
		return def.Excludes
	}
	return nil
}

func (b *Builder) findDefaults(dep DependencyData) (Defaults, bool) {
	if b.defaults == nil {
		return Defaults{}, false
	}
	return b.defaults.FindDefaults(dep.Key())
}
