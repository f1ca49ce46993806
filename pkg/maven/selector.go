package maven

// Maven's dynamic version keywords and their target-model spellings.
const (
	mavenLatest  = "LATEST"
	mavenRelease = "RELEASE"

	latestIntegration = "latest.integration"
	latestRelease     = "latest.release"
)

// Translator converts Maven version notation into the descriptor model's
// selector syntax. It implements descriptor.VersionTranslator.
//
// The zero value is ready to use and safe for concurrent use.
type Translator struct{}

// Translate rewrites a Maven version string as a target-model selector.
// "LATEST" becomes "latest.integration", "RELEASE" becomes "latest.release";
// every other version, including ranges and exact versions, is returned
// unchanged.
func (Translator) Translate(mavenVersion string) string {
	switch mavenVersion {
	case mavenLatest:
		return latestIntegration
	case mavenRelease:
		return latestRelease
	}
	return mavenVersion
}
