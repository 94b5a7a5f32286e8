// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Concurrent rotation sampling, Detail view sparkline, JSON export
// 0.2.0 - Report-2009 Earth and Moon models, typed unknown-body errors
// 0.1.0 - Initial release: Report-2015 models, VSOP87 frame conversion, headless table
