package descriptor

// Standard configuration names.
const (
	ConfDefault  = "default"
	ConfMaster   = "master"
	ConfCompile  = "compile"
	ConfProvided = "provided"
	ConfRuntime  = "runtime"
	ConfTest     = "test"
	ConfSystem   = "system"
	ConfSources  = "sources"
	ConfJavadoc  = "javadoc"
	ConfOptional = "optional"
)

// StandardConfigurations returns the fixed ten-entry configuration catalog
// registered for every Maven module, with its fixed extends graph. The
// catalog is the wire contract with the resolver: the same names and
// inheritance edges are produced regardless of POM content.
//
// A fresh slice is returned on every call so callers can attach it to a
// descriptor without aliasing.
func StandardConfigurations() []Configuration {
	return []Configuration{
		{
			Name:        ConfDefault,
			Visibility:  VisibilityPublic,
			Description: "runtime dependencies and master artifact can be used with this conf",
			Extends:     []string{ConfRuntime, ConfMaster},
			Transitive:  true,
		},
		{
			Name:        ConfMaster,
			Visibility:  VisibilityPublic,
			Description: "contains only the artifact published by this module itself, with no transitive dependencies",
			Transitive:  true,
		},
		{
			Name:        ConfCompile,
			Visibility:  VisibilityPublic,
			Description: "this is the default scope, used if none is specified. Compile dependencies are available in all classpaths.",
			Transitive:  true,
		},
		{
			Name:        ConfProvided,
			Visibility:  VisibilityPublic,
			Description: "this is much like compile, but indicates you expect the JDK or a container to provide it. It is only available on the compilation classpath, and is not transitive.",
			Transitive:  true,
		},
		{
			Name:        ConfRuntime,
			Visibility:  VisibilityPublic,
			Description: "this scope indicates that the dependency is not required for compilation, but is for execution. It is in the runtime and test classpaths, but not the compile classpath.",
			Extends:     []string{ConfCompile},
			Transitive:  true,
		},
		{
			Name:        ConfTest,
			Visibility:  VisibilityPrivate,
			Description: "this scope indicates that the dependency is not required for normal use of the application, and is only available for the test compilation and execution phases.",
			Extends:     []string{ConfRuntime},
			Transitive:  true,
		},
		{
			Name:        ConfSystem,
			Visibility:  VisibilityPublic,
			Description: "this scope is similar to provided except that you have to provide the JAR which contains it explicitly. The artifact is always available and is not looked up in a repository.",
			Transitive:  true,
		},
		{
			Name:        ConfSources,
			Visibility:  VisibilityPublic,
			Description: "this configuration contains the source artifact of this module, if any.",
			Transitive:  true,
		},
		{
			Name:        ConfJavadoc,
			Visibility:  VisibilityPublic,
			Description: "this configuration contains the javadoc artifact of this module, if any.",
			Transitive:  true,
		},
		{
			Name:        ConfOptional,
			Visibility:  VisibilityPublic,
			Description: "contains all optional dependencies",
			Transitive:  true,
		},
	}
}
