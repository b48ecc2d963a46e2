package interval

import "log"

// DeprecationReporter receives a notice whenever a caller exercises a
// deprecated code path in this package. Grounded on the teacher's
// Reporter/DefaultReporter pair (report.go), generalized from formatting
// incompatibility explanations to surfacing deprecation notices.
type DeprecationReporter interface {
	Deprecated(feature, alternative string)
}

// DefaultDeprecationReporter writes a deprecation notice to os.Stderr via
// log.Default(), matching the teacher's own plain-stdlib approach to
// diagnostic output (report.go formats with fmt/strings rather than
// reaching for a logging framework).
type DefaultDeprecationReporter struct{}

// Deprecated implements DeprecationReporter.
func (DefaultDeprecationReporter) Deprecated(feature, alternative string) {
	log.Default().Printf("interval: %s is deprecated, use %s instead", feature, alternative)
}

// NoOpDeprecationReporter discards deprecation notices. Swap it in via
// [Deprecations] to silence them.
type NoOpDeprecationReporter struct{}

// Deprecated implements DeprecationReporter.
func (NoOpDeprecationReporter) Deprecated(feature, alternative string) {}

// Deprecations is the package-wide reporter consulted by the deprecated
// scalar-vs-interval comparison helpers. Replace it (e.g. with
// [NoOpDeprecationReporter] or a reporter backed by log/slog) to change how
// these notices surface.
var Deprecations DeprecationReporter = DefaultDeprecationReporter{}
