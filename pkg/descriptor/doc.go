// Package descriptor translates parsed Maven POM data into a normalized,
// resolver-ready module descriptor.
//
// The descriptor model follows the Ivy view of a Maven module: a fixed
// catalog of configurations (usage scopes), dependencies mapped onto those
// configurations, exclusion rules, and artifact overrides. A resolution
// engine consumes the finished ModuleDescriptor; this package only builds it.
//
// # Building a descriptor
//
// One Builder processes exactly one POM. The builder is handed two
// collaborators at construction: a DependencyDefaults lookup supplying
// dependency-management fallbacks (version, scope, exclusions) by coordinate,
// and a VersionTranslator converting Maven version notation into the
// selector syntax of the target model.
//
//	b := descriptor.NewBuilder(reader, maven.Translator{})
//	b.SetIdentity(reader.GroupID(), reader.ArtifactID(), reader.Version())
//	b.SetDescription(reader.Description())
//	for _, dep := range reader.Dependencies() {
//	    if err := b.AddDependency(dep); err != nil {
//	        return err
//	    }
//	}
//	desc := b.Descriptor()
//
// # Maven semantics encoded here
//
// The builder encodes the interacting Maven rules that make this translation
// hard: scope coercion for unknown scopes, dependency-management defaulting,
// optional-dependency fan-out, classifier/type artifact inference,
// timestamped-snapshot version normalization, and self-dependency
// suppression (some published POMs depend on themselves; those dependencies
// are dropped).
//
// The only fatal condition is a dependency with no declared version and no
// managed default; it surfaces as *UnresolvedVersionError. Everything else
// degrades to documented defaults.
//
// Builders are not safe for concurrent use. They hold the descriptor under
// construction as single mutable state and perform no I/O.
package descriptor
