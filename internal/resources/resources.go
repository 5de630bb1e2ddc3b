// Package resources embeds the files libwizard ships with.
package resources

import _ "embed"

// LicenseTemplate is the canonical license text. The first "YYYY" is
// replaced with the copyright year when a header is composed.
//
//go:embed LICENSE.example
var LicenseTemplate string

// YearPlaceholder is the token substituted in LicenseTemplate.
const YearPlaceholder = "YYYY"
