package argv

// Mode is a bitmask controlling how ambiguous option tokens are classified.
// Bits combine freely except for the two Prefer* bits, which are mutually
// exclusive.
type Mode int

const (
	// PreferFlagForUnregistered treats an unregistered option name followed
	// by a non-option token as a flag; the following token stays positional.
	PreferFlagForUnregistered Mode = 1 << iota

	// PreferParamForUnregistered treats an unregistered option name followed
	// by a non-option token as a parameter consuming that token as its value.
	PreferParamForUnregistered

	// NoSplitOnEquals disables name=value inline splitting; such tokens go
	// through the ordinary flag/parameter lookahead logic instead.
	NoSplitOnEquals

	// SingleDashMultiflag expands a single-dash, unregistered, multi-character
	// token into one flag per character (tar-style -xvf).
	SingleDashMultiflag
)

// DefaultMode is the behavior when the caller has no opinion: unregistered
// options lean toward being flags.
const DefaultMode = PreferFlagForUnregistered

// Validate reports an invalid mode combination. Called by Classify before
// any token is inspected, so a bad configuration never produces a partially
// populated parser.
func (m Mode) Validate() error {
	if m&PreferFlagForUnregistered != 0 && m&PreferParamForUnregistered != 0 {
		return NewParseError(ErrorTypeConflictingModes,
			"PreferFlagForUnregistered and PreferParamForUnregistered are mutually exclusive")
	}
	return nil
}

// Has reports whether all bits of b are set in m
func (m Mode) Has(b Mode) bool {
	return m&b == b
}
