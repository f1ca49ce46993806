// Package maven bridges Maven version notation to the selector syntax of
// the descriptor model.
//
// # Overview
//
// Maven and the descriptor's target model spell dynamic version selectors
// differently. A POM may request "LATEST" or "RELEASE"; the target model
// expresses the same intent as "latest.integration" and "latest.release".
// Exact versions and Maven version ranges ("[1.0,2.0)", "[1.5,)") are
// already valid selector syntax and pass through untouched.
//
// Translation is a pure syntax rewrite. No repository is contacted and no
// selector is resolved to a concrete version; that is the resolution
// engine's job.
//
// # Usage
//
//	t := maven.Translator{}
//	t.Translate("LATEST")     // "latest.integration"
//	t.Translate("RELEASE")    // "latest.release"
//	t.Translate("[1.0,2.0)")  // "[1.0,2.0)"
//	t.Translate("1.4.2")      // "1.4.2"
package maven
