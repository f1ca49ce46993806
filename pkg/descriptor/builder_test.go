package descriptor

import (
	"errors"
	"reflect"
	"testing"
)

// fakeDefaults is an in-memory DependencyDefaults for tests.
type fakeDefaults map[Key]Defaults

func (f fakeDefaults) FindDefaults(k Key) (Defaults, bool) {
	d, ok := f[k]
	return d, ok
}

// passthrough is a VersionTranslator that leaves versions untouched.
type passthrough struct{}

func (passthrough) Translate(v string) string { return v }

// prefixTranslator tags translated versions so tests can observe that the
// translator ran.
type prefixTranslator struct{}

func (prefixTranslator) Translate(v string) string { return "T:" + v }

func newTestBuilder(defaults DependencyDefaults) *Builder {
	b := NewBuilder(defaults, passthrough{})
	b.SetIdentity("org.example", "app", "1.0")
	return b
}

func TestBuilder_SetIdentity(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		wantVersion string
		wantStatus  Status
	}{
		{"release", "2.3", "2.3", StatusRelease},
		{"snapshot", "1.0-SNAPSHOT", "1.0-SNAPSHOT", StatusIntegration},
		{"timestamped snapshot", "1.0-20230101.120000-5", "1.0-SNAPSHOT", StatusIntegration},
		{"timestamp-like but not snapshot", "1.0-20230101.120000", "1.0-20230101.120000", StatusRelease},
		{"empty", "", "", StatusRelease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(nil, passthrough{})
			b.SetIdentity("org.example", "app", tt.version)

			desc := b.Descriptor()
			if desc.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", desc.Version, tt.wantVersion)
			}
			if desc.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", desc.Status, tt.wantStatus)
			}
		})
	}
}

func TestBuilder_SetIdentity_RegistersCatalog(t *testing.T) {
	b := newTestBuilder(nil)
	desc := b.Descriptor()

	if got := len(desc.Configurations); got != 10 {
		t.Fatalf("len(Configurations) = %d, want 10", got)
	}

	wantExtends := map[string][]string{
		"default": {"runtime", "master"},
		"runtime": {"compile"},
		"test":    {"runtime"},
	}
	for name, want := range wantExtends {
		conf, ok := desc.Configuration(name)
		if !ok {
			t.Fatalf("configuration %q not found", name)
		}
		if !reflect.DeepEqual(conf.Extends, want) {
			t.Errorf("%s extends = %v, want %v", name, conf.Extends, want)
		}
	}

	test, _ := desc.Configuration("test")
	if test.Visibility != VisibilityPrivate {
		t.Errorf("test visibility = %q, want private", test.Visibility)
	}
	compile, _ := desc.Configuration("compile")
	if compile.Visibility != VisibilityPublic {
		t.Errorf("compile visibility = %q, want public", compile.Visibility)
	}
}

func TestBuilder_AddDependency_ScopeMapping(t *testing.T) {
	tests := []struct {
		name     string
		scope    string
		optional bool
		want     []ConfMapping
	}{
		{
			name:  "compile",
			scope: "compile",
			want: []ConfMapping{
				{From: "compile", To: []string{"compile(*)", "master(*)"}},
				{From: "runtime", To: []string{"runtime(*)"}},
			},
		},
		{
			name:     "compile optional",
			scope:    "compile",
			optional: true,
			want: []ConfMapping{
				{From: "optional", To: []string{"compile(*)", "master(*)"}},
			},
		},
		{
			name:  "provided",
			scope: "provided",
			want: []ConfMapping{
				{From: "provided", To: []string{"compile(*)", "provided(*)", "runtime(*)", "master(*)"}},
			},
		},
		{
			name:     "provided optional",
			scope:    "provided",
			optional: true,
			want: []ConfMapping{
				{From: "optional", To: []string{"compile(*)", "provided(*)", "runtime(*)", "master(*)"}},
			},
		},
		{
			name:  "runtime",
			scope: "runtime",
			want: []ConfMapping{
				{From: "runtime", To: []string{"compile(*)", "runtime(*)", "master(*)"}},
			},
		},
		{
			name:     "runtime optional",
			scope:    "runtime",
			optional: true,
			want: []ConfMapping{
				{From: "optional", To: []string{"compile(*)", "provided(*)", "master(*)"}},
			},
		},
		{
			name:  "test",
			scope: "test",
			want: []ConfMapping{
				{From: "test", To: []string{"runtime(*)", "master(*)"}},
			},
		},
		{
			name:     "test optional ignored",
			scope:    "test",
			optional: true,
			want: []ConfMapping{
				{From: "test", To: []string{"runtime(*)", "master(*)"}},
			},
		},
		{
			name:  "system",
			scope: "system",
			want: []ConfMapping{
				{From: "system", To: []string{"master(*)"}},
			},
		},
		{
			name:     "system optional ignored",
			scope:    "system",
			optional: true,
			want: []ConfMapping{
				{From: "system", To: []string{"master(*)"}},
			},
		},
		{
			name:  "unknown scope coerced to compile",
			scope: "funky",
			want: []ConfMapping{
				{From: "compile", To: []string{"compile(*)", "master(*)"}},
				{From: "runtime", To: []string{"runtime(*)"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(nil)
			err := b.AddDependency(DependencyData{
				Group:    "org.dep",
				Name:     "lib",
				Version:  "1.1",
				Scope:    tt.scope,
				Optional: tt.optional,
			})
			if err != nil {
				t.Fatalf("AddDependency failed: %v", err)
			}

			deps := b.Descriptor().Dependencies
			if len(deps) != 1 {
				t.Fatalf("len(Dependencies) = %d, want 1", len(deps))
			}
			if !reflect.DeepEqual(deps[0].Mappings, tt.want) {
				t.Errorf("Mappings = %v, want %v", deps[0].Mappings, tt.want)
			}
		})
	}
}

func TestBuilder_AddDependency_EmptyScopeUsesManagedDefault(t *testing.T) {
	tests := []struct {
		name         string
		managedScope string
		wantConf     string
	}{
		{"managed runtime", "runtime", "runtime"},
		{"managed unknown coerced", "import", "compile"},
		{"no managed entry", "", "compile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := fakeDefaults{}
			if tt.managedScope != "" {
				defaults[Key{Group: "org.dep", Name: "lib"}] = Defaults{Scope: tt.managedScope}
			}

			b := newTestBuilder(defaults)
			if err := b.AddDependency(DependencyData{Group: "org.dep", Name: "lib", Version: "1.0"}); err != nil {
				t.Fatalf("AddDependency failed: %v", err)
			}

			dep := b.Descriptor().Dependencies[0]
			if got := dep.Mappings[0].From; got != tt.wantConf {
				t.Errorf("declaring conf = %q, want %q", got, tt.wantConf)
			}
		})
	}
}

func TestBuilder_AddDependency_VersionResolution(t *testing.T) {
	defaults := fakeDefaults{
		{Group: "org.dep", Name: "managed"}: {Version: "3.2"},
	}

	t.Run("declared version wins", func(t *testing.T) {
		b := newTestBuilder(defaults)
		if err := b.AddDependency(DependencyData{Group: "org.dep", Name: "managed", Version: "9.9"}); err != nil {
			t.Fatalf("AddDependency failed: %v", err)
		}
		if got := b.Descriptor().Dependencies[0].Selector.Version; got != "9.9" {
			t.Errorf("version = %q, want 9.9", got)
		}
	})

	t.Run("managed fallback", func(t *testing.T) {
		b := newTestBuilder(defaults)
		if err := b.AddDependency(DependencyData{Group: "org.dep", Name: "managed"}); err != nil {
			t.Fatalf("AddDependency failed: %v", err)
		}
		if got := b.Descriptor().Dependencies[0].Selector.Version; got != "3.2" {
			t.Errorf("version = %q, want 3.2", got)
		}
	})

	t.Run("unresolved is fatal", func(t *testing.T) {
		b := newTestBuilder(defaults)
		err := b.AddDependency(DependencyData{Group: "org.dep", Name: "unmanaged"})

		var unresolved *UnresolvedVersionError
		if !errors.As(err, &unresolved) {
			t.Fatalf("error = %v, want *UnresolvedVersionError", err)
		}
		if unresolved.Group != "org.dep" || unresolved.Name != "unmanaged" {
			t.Errorf("error coordinate = %s:%s, want org.dep:unmanaged", unresolved.Group, unresolved.Name)
		}
		if got := len(b.Descriptor().Dependencies); got != 0 {
			t.Errorf("len(Dependencies) = %d, want 0", got)
		}
	})
}

func TestBuilder_AddDependency_TranslatesVersion(t *testing.T) {
	b := NewBuilder(nil, prefixTranslator{})
	b.SetIdentity("org.example", "app", "1.0")

	if err := b.AddDependency(DependencyData{Group: "org.dep", Name: "lib", Version: "[1.0,2.0)"}); err != nil {
		t.Fatalf("AddDependency failed: %v", err)
	}
	if got := b.Descriptor().Dependencies[0].Selector.Version; got != "T:[1.0,2.0)" {
		t.Errorf("version = %q, want T:[1.0,2.0)", got)
	}
}

func TestBuilder_AddDependency_SelfDependencyDropped(t *testing.T) {
	b := NewBuilder(nil, passthrough{})
	b.SetIdentity("org.example", "app", "1.0-20230101.120000-5")

	// Same group and artifact as the module itself, different declared version.
	err := b.AddDependency(DependencyData{
		Group:    "org.example",
		Name:     "app",
		Version:  "2.0",
		Excludes: []ModuleID{{Group: "org.other", Name: "x"}},
	})
	if err != nil {
		t.Fatalf("AddDependency failed: %v", err)
	}

	if got := len(b.Descriptor().Dependencies); got != 0 {
		t.Errorf("len(Dependencies) = %d, want 0", got)
	}
}

func TestBuilder_ArtifactInference(t *testing.T) {
	tests := []struct {
		name     string
		dep      DependencyData
		wantNone bool
		want     Artifact
	}{
		{
			name:     "plain jar has no override",
			dep:      DependencyData{Group: "g", Name: "n", Version: "1", Type: "jar"},
			wantNone: true,
		},
		{
			name:     "no type no classifier",
			dep:      DependencyData{Group: "g", Name: "n", Version: "1"},
			wantNone: true,
		},
		{
			name: "test-jar derives tests classifier",
			dep:  DependencyData{Group: "g", Name: "n", Version: "1", Type: "test-jar"},
			want: Artifact{Name: "n", Type: "test-jar", Ext: "jar", Classifier: "tests", Configurations: []string{"compile"}},
		},
		{
			name: "ejb-client derives client classifier",
			dep:  DependencyData{Group: "g", Name: "n", Version: "1", Type: "ejb-client", Scope: "runtime"},
			want: Artifact{Name: "n", Type: "ejb-client", Ext: "jar", Classifier: "client", Configurations: []string{"runtime"}},
		},
		{
			name: "non jar-like type keeps its extension",
			dep:  DependencyData{Group: "g", Name: "n", Version: "1", Type: "so"},
			want: Artifact{Name: "n", Type: "so", Ext: "so", Configurations: []string{"compile"}},
		},
		{
			name: "classifier only defaults type to jar",
			dep:  DependencyData{Group: "g", Name: "n", Version: "1", Classifier: "jdk15"},
			want: Artifact{Name: "n", Type: "jar", Ext: "jar", Classifier: "jdk15", Configurations: []string{"compile"}},
		},
		{
			name: "declared classifier wins over derived",
			dep:  DependencyData{Group: "g", Name: "n", Version: "1", Type: "test-jar", Classifier: "shaded"},
			want: Artifact{Name: "n", Type: "test-jar", Ext: "jar", Classifier: "shaded", Configurations: []string{"compile"}},
		},
		{
			name: "optional attaches to the optional conf",
			dep:  DependencyData{Group: "g", Name: "n", Version: "1", Type: "test-jar", Optional: true},
			want: Artifact{Name: "n", Type: "test-jar", Ext: "jar", Classifier: "tests", Configurations: []string{"optional"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(nil)
			if err := b.AddDependency(tt.dep); err != nil {
				t.Fatalf("AddDependency failed: %v", err)
			}

			artifacts := b.Descriptor().Dependencies[0].Artifacts
			if tt.wantNone {
				if len(artifacts) != 0 {
					t.Fatalf("Artifacts = %v, want none", artifacts)
				}
				return
			}
			if len(artifacts) != 1 {
				t.Fatalf("len(Artifacts) = %d, want 1", len(artifacts))
			}
			if !reflect.DeepEqual(artifacts[0], tt.want) {
				t.Errorf("Artifact = %+v, want %+v", artifacts[0], tt.want)
			}
		})
	}
}

func TestBuilder_Exclusions(t *testing.T) {
	managed := fakeDefaults{
		{Group: "org.dep", Name: "lib"}: {
			Version:  "1.0",
			Excludes: []ModuleID{{Group: "org.managed", Name: "excluded"}},
		},
	}

	t.Run("declared exclusions win", func(t *testing.T) {
		b := newTestBuilder(managed)
		err := b.AddDependency(DependencyData{
			Group:    "org.dep",
			Name:     "lib",
			Version:  "1.0",
			Excludes: []ModuleID{{Group: "org.declared", Name: "excluded"}},
		})
		if err != nil {
			t.Fatalf("AddDependency failed: %v", err)
		}

		rules := b.Descriptor().Dependencies[0].Excludes
		if len(rules) != 1 {
			t.Fatalf("len(Excludes) = %d, want 1", len(rules))
		}
		if rules[0].Module.Group != "org.declared" {
			t.Errorf("excluded group = %q, want org.declared", rules[0].Module.Group)
		}
	})

	t.Run("empty declared list inherits managed exclusions", func(t *testing.T) {
		b := newTestBuilder(managed)
		if err := b.AddDependency(DependencyData{Group: "org.dep", Name: "lib", Version: "1.0"}); err != nil {
			t.Fatalf("AddDependency failed: %v", err)
		}

		rules := b.Descriptor().Dependencies[0].Excludes
		if len(rules) != 1 {
			t.Fatalf("len(Excludes) = %d, want 1", len(rules))
		}
		want := ExcludeRule{
			Module:         ModuleID{Group: "org.managed", Name: "excluded"},
			Artifact:       MatchAny,
			Type:           MatchAny,
			Ext:            MatchAny,
			Configurations: []string{"compile", "runtime"},
		}
		if !reflect.DeepEqual(rules[0], want) {
			t.Errorf("ExcludeRule = %+v, want %+v", rules[0], want)
		}
	})

	t.Run("rules cover every mapped configuration", func(t *testing.T) {
		b := newTestBuilder(nil)
		err := b.AddDependency(DependencyData{
			Group:    "org.dep",
			Name:     "lib",
			Version:  "1.0",
			Scope:    "provided",
			Excludes: []ModuleID{{Group: "a", Name: "b"}},
		})
		if err != nil {
			t.Fatalf("AddDependency failed: %v", err)
		}

		rules := b.Descriptor().Dependencies[0].Excludes
		if want := []string{"provided"}; !reflect.DeepEqual(rules[0].Configurations, want) {
			t.Errorf("rule confs = %v, want %v", rules[0].Configurations, want)
		}
	})
}

func TestBuilder_AddDependencyForRelocation(t *testing.T) {
	t.Run("maps public configurations onto themselves", func(t *testing.T) {
		b := newTestBuilder(nil)
		b.AddDependencyForRelocation("org.new", "home", "1.0")

		deps := b.Descriptor().Dependencies
		if len(deps) != 1 {
			t.Fatalf("len(Dependencies) = %d, want 1", len(deps))
		}

		dep := deps[0]
		// Everything but the private test configuration.
		wantConfs := []string{"default", "master", "compile", "provided", "runtime", "system", "sources", "javadoc", "optional"}
		if got := dep.DeclaringConfs(); !reflect.DeepEqual(got, wantConfs) {
			t.Fatalf("declaring confs = %v, want %v", got, wantConfs)
		}
		for _, conf := range wantConfs {
			if got := dep.TargetsOf(conf); !reflect.DeepEqual(got, []string{conf}) {
				t.Errorf("TargetsOf(%q) = %v, want [%s]", conf, got, conf)
			}
		}
		if len(dep.Excludes) != 0 || len(dep.Artifacts) != 0 {
			t.Errorf("relocation dependency carries excludes/artifacts: %+v", dep)
		}
	})

	t.Run("self relocation dropped", func(t *testing.T) {
		b := newTestBuilder(nil)
		b.AddDependencyForRelocation("org.example", "app", "2.0")

		if got := len(b.Descriptor().Dependencies); got != 0 {
			t.Errorf("len(Dependencies) = %d, want 0", got)
		}
	})
}

func TestBuilder_Idempotence(t *testing.T) {
	build := func() *ModuleDescriptor {
		defaults := fakeDefaults{
			{Group: "org.dep", Name: "managed"}: {Version: "2.0", Scope: "runtime", Excludes: []ModuleID{{Group: "x", Name: "y"}}},
		}
		b := NewBuilder(defaults, passthrough{})
		b.SetIdentity("org.example", "app", "1.0-SNAPSHOT")
		b.SetDescription("example module")
		deps := []DependencyData{
			{Group: "org.dep", Name: "lib", Version: "1.0", Scope: "compile"},
			{Group: "org.dep", Name: "managed"},
			{Group: "org.dep", Name: "extra", Version: "3.0", Type: "test-jar", Optional: true},
		}
		for _, d := range deps {
			if err := b.AddDependency(d); err != nil {
				t.Fatalf("AddDependency failed: %v", err)
			}
		}
		b.AddDependencyForRelocation("org.new", "home", "1.0")
		return b.Descriptor()
	}

	first := build()
	second := build()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("descriptors differ between identical runs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
