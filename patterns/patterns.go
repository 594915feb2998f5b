// Package patterns provides ready-made regex patterns for common data
// formats.
//
// Each constant is a pattern string for stringgen.Compile. The patterns
// avoid the \w \d \s shorthands and the wildcard, so they generate the same
// shapes regardless of the configured alphabet.
//
//	g := stringgen.MustCompile(patterns.UUID4)
//	id, _ := g.Render() // e.g. "52aabe4b-01fa-4b33-8976-b53b09f49e72"
package patterns

// Identifiers
const (
	// UUID4 is a version-4 UUID with a valid variant nibble.
	UUID4 = "[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}"

	// ObjectID is a 24-digit hexadecimal object identifier.
	ObjectID = "[a-f0-9]{24}"
)

// Network
const (
	// IPv4 is a dotted quad with each octet in 0-255.
	IPv4 = "(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])\\." +
		"(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])\\." +
		"(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])\\." +
		"(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])"

	// IPv6Short is an uncompressed, lower-case IPv6 address.
	IPv6Short = "[a-f0-9]{1,4}(:[a-f0-9]{1,4}){7}"

	// MACAddress is a colon-separated, lower-case MAC address.
	MACAddress = "[a-f0-9]{2}(:[a-f0-9]{2}){5}"
)

// Web
const (
	// HexColor is a six-digit hex color with leading '#'.
	HexColor = "#[a-fA-F0-9]{6}"

	// HexColorShort is a three-digit hex color with leading '#'.
	HexColorShort = "#[a-fA-F0-9]{3}"

	// Slug is a lower-case URL slug of two to six hyphenated words.
	Slug = "[a-z][a-z0-9]*(-[a-z0-9]+){1,5}"
)

// Data formats
const (
	// SemVer is a semantic version core (major.minor.patch, no leading zeros).
	SemVer = "(0|[1-9][0-9]*)\\.(0|[1-9][0-9]*)\\.(0|[1-9][0-9]*)"

	// DateISO is an ISO-8601 calendar date in the 2020s or 2030s.
	DateISO = "20[2-3][0-9]-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])"

	// Time24h is a 24-hour wall-clock time with seconds.
	Time24h = "([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]"
)

// Security / auth
const (
	// JWTLike is three dot-separated base64url-shaped segments.
	JWTLike = "[A-Za-z0-9_-]{20,40}\\.[A-Za-z0-9_-]{20,60}\\.[A-Za-z0-9_-]{20,40}"

	// APIKey is a Stripe-style key: sk|pk, live|test, 20 alphanumerics.
	APIKey = "(sk|pk)_(live|test)_[a-zA-Z0-9]{20}"
)
