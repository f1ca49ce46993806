// Package pom reads Maven project descriptors (pom.xml) into the records
// the descriptor builder consumes.
//
// # Overview
//
// A Reader wraps one parsed POM and exposes resolved views of it: identity
// with parent fallback, property-interpolated dependency records, the
// dependency-management section as a coordinate-keyed default lookup, and
// the relocation target if the POM declares one.
//
// # Property interpolation
//
// Values may reference properties with ${...} notation. References are
// resolved against the <properties> section plus the built-in project.*,
// pom.* and parent.* coordinates. Unresolvable references are left verbatim;
// this package does not validate the POM beyond well-formed XML.
//
// # Usage
//
//	r, err := pom.Load("pom.xml")
//	if err != nil {
//	    return err
//	}
//	b := descriptor.NewBuilder(r, maven.Translator{})
//	b.SetIdentity(r.GroupID(), r.ArtifactID(), r.Version())
//	for _, dep := range r.Dependencies() {
//	    if err := b.AddDependency(dep); err != nil {
//	        return err
//	    }
//	}
//
// The Reader implements descriptor.DependencyDefaults, so it plugs directly
// into the builder as the dependency-management lookup.
package pom
