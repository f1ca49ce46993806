// Package pkg provides the core libraries for pomdesc POM translation.
//
// # Overview
//
// pomdesc translates Maven project descriptors into normalized module
// descriptors a dependency resolver can walk. The pkg directory is organized
// into focused areas:
//
//  1. [pom] - reading pom.xml into dependency and property records
//  2. [maven] - Maven version notation to selector syntax translation
//  3. [descriptor] - the target model and the builder that populates it
//  4. [errors] - structured, code-carrying errors
//  5. [buildinfo] - build-time version metadata
//
// # Architecture
//
// The typical data flow:
//
//	pom.xml
//	   ↓ pom.Reader (parse, interpolate, dependency management)
//	descriptor.Builder (scopes, mappings, exclusions, artifacts)
//	   ↓
//	descriptor.ModuleDescriptor → resolution engine / CLI output
//
// The builder never touches XML or the filesystem; the reader never decides
// translation semantics. They meet at the DependencyData records and the
// DependencyDefaults lookup interface.
package pkg
