package descriptor

// Scope is a Maven dependency scope. The set of scopes is closed; anything
// else a POM declares is coerced to compile.
type Scope string

const (
	ScopeCompile  Scope = "compile"
	ScopeProvided Scope = "provided"
	ScopeRuntime  Scope = "runtime"
	ScopeTest     Scope = "test"
	ScopeSystem   Scope = "system"
)

// KnownScope reports whether s names one of the five Maven scopes.
func KnownScope(s string) bool {
	switch Scope(s) {
	case ScopeCompile, ScopeProvided, ScopeRuntime, ScopeTest, ScopeSystem:
		return true
	}
	return false
}

// confPair is one declaring-configuration / target-pattern entry of the
// scope mapping table.
type confPair struct {
	from, to string
}

// confMappings returns the configuration-mapping table entries for the
// scope, branching on whether the dependency is optional. Optional makes no
// difference for test and system scopes.
func (s Scope) confMappings(optional bool) []confPair {
	switch s {
	case ScopeCompile:
		if optional {
			return []confPair{
				{ConfOptional, "compile(*)"},
				{ConfOptional, "master(*)"},
			}
		}
		return []confPair{
			{ConfCompile, "compile(*)"},
			{ConfCompile, "master(*)"},
			{ConfRuntime, "runtime(*)"},
		}
	case ScopeProvided:
		if optional {
			return []confPair{
				{ConfOptional, "compile(*)"},
				{ConfOptional, "provided(*)"},
				{ConfOptional, "runtime(*)"},
				{ConfOptional, "master(*)"},
			}
		}
		return []confPair{
			{ConfProvided, "compile(*)"},
			{ConfProvided, "provided(*)"},
			{ConfProvided, "runtime(*)"},
			{ConfProvided, "master(*)"},
		}
	case ScopeRuntime:
		if optional {
			return []confPair{
				{ConfOptional, "compile(*)"},
				{ConfOptional, "provided(*)"},
				{ConfOptional, "master(*)"},
			}
		}
		return []confPair{
			{ConfRuntime, "compile(*)"},
			{ConfRuntime, "runtime(*)"},
			{ConfRuntime, "master(*)"},
		}
	case ScopeTest:
		return []confPair{
			{ConfTest, "runtime(*)"},
			{ConfTest, "master(*)"},
		}
	case ScopeSystem:
		return []confPair{
			{ConfSystem, "master(*)"},
		}
	}
	return nil
}

// jarLikeTypes are the dependency types packaged as a plain jar file. For
// these the artifact extension is "jar"; for any other type the extension is
// the type literal itself.
var jarLikeTypes = map[string]bool{
	"jar":            true,
	"test-jar":       true,
	"ejb-client":     true,
	"ejb":            true,
	"bundle":         true,
	"maven-plugin":   true,
	"eclipse-plugin": true,
}

func extensionForType(typ string) string {
	if jarLikeTypes[typ] {
		return "jar"
	}
	return typ
}

// classifierForType derives an implicit classifier from special dependency
// types: test-jar artifacts carry the "tests" classifier and ejb-client
// artifacts the "client" classifier. Other types have none.
func classifierForType(typ string) string {
	switch typ {
	case "test-jar":
		return "tests"
	case "ejb-client":
		return "client"
	}
	return ""
}
