package argv

import "time"

// Read-only accessors over the classified containers. All of them are safe
// for concurrent readers once Classify has returned.

// Flag reports whether any of the given alias names was recorded as a flag.
// Names are compared dash-stripped, so Flag("-v", "--verbose") works.
func (p *Parser) Flag(names ...string) bool {
	for _, name := range names {
		if _, ok := p.flags[trimOptionMarks(name)]; ok {
			return true
		}
	}
	return false
}

// FlagCount returns how many times name was recorded as a flag
func (p *Parser) FlagCount(name string) int {
	return p.flags[trimOptionMarks(name)]
}

// Arg returns the positional argument at index i, or ("", false) when i is
// out of range.
func (p *Parser) Arg(i int) (string, bool) {
	if i < 0 || i >= len(p.positionals) {
		return "", false
	}
	return p.positionals[i], true
}

// Param returns the value for the first of the given alias names that was
// recorded as a parameter, or ("", false) when none was.
func (p *Parser) Param(names ...string) (string, bool) {
	for _, name := range names {
		if v, ok := p.params[trimOptionMarks(name)]; ok {
			return v, true
		}
	}
	return "", false
}

// ParamAs returns the parameter value for the first matching alias converted
// to T. Absence and conversion failure share the same false result; callers
// that need to tell them apart can inspect the raw string via Param.
func ParamAs[T Value](p *Parser, names ...string) (T, bool) {
	s, ok := p.Param(names...)
	if !ok {
		var zero T
		return zero, false
	}
	v, err := Parse[T](s)
	return v, err == nil
}

// ParamOr is ParamAs with a default: an absent parameter is substituted by
// def formatted to its string form and re-parsed, so the default travels the
// same conversion path as a real value. A present but malformed value also
// yields def.
func ParamOr[T Value](p *Parser, name string, def T) T {
	s, ok := p.Param(name)
	if !ok {
		s = Format(def)
	}
	v, err := Parse[T](s)
	if err != nil {
		return def
	}
	return v
}

// ParamAnyOr is ParamOr over a list of alternative names; the first recorded
// alias wins, and def is substituted (via its string form) when none match.
func ParamAnyOr[T Value](p *Parser, names []string, def T) T {
	s, ok := p.Param(names...)
	if !ok {
		s = Format(def)
	}
	v, err := Parse[T](s)
	if err != nil {
		return def
	}
	return v
}

// ArgAs returns the positional argument at index i converted to T. Absence
// and conversion failure share the same false result.
func ArgAs[T Value](p *Parser, i int) (T, bool) {
	s, ok := p.Arg(i)
	if !ok {
		var zero T
		return zero, false
	}
	v, err := Parse[T](s)
	return v, err == nil
}

// ArgOr is ArgAs with a default, round-tripped through its string form like
// ParamOr.
func ArgOr[T Value](p *Parser, i int, def T) T {
	s, ok := p.Arg(i)
	if !ok {
		s = Format(def)
	}
	v, err := Parse[T](s)
	if err != nil {
		return def
	}
	return v
}

// Typed convenience methods - consistent access patterns for parameter values

// GetString retrieves a string parameter value
func (p *Parser) GetString(name string) (string, bool) {
	return ParamAs[string](p, name)
}

// GetInt retrieves an integer parameter value
func (p *Parser) GetInt(name string) (int, bool) {
	return ParamAs[int](p, name)
}

// GetBool retrieves a boolean parameter value
func (p *Parser) GetBool(name string) (bool, bool) {
	return ParamAs[bool](p, name)
}

// GetFloat retrieves a float64 parameter value
func (p *Parser) GetFloat(name string) (float64, bool) {
	return ParamAs[float64](p, name)
}

// GetDuration retrieves a duration parameter value
func (p *Parser) GetDuration(name string) (time.Duration, bool) {
	return ParamAs[time.Duration](p, name)
}

// Convenience methods with defaults (Must pattern) - return value or default

// MustGetString retrieves a string parameter value or returns the default
func (p *Parser) MustGetString(name, defaultValue string) string {
	return ParamOr(p, name, defaultValue)
}

// MustGetInt retrieves an int parameter value or returns the default
func (p *Parser) MustGetInt(name string, defaultValue int) int {
	return ParamOr(p, name, defaultValue)
}

// MustGetBool retrieves a bool parameter value or returns the default
func (p *Parser) MustGetBool(name string, defaultValue bool) bool {
	return ParamOr(p, name, defaultValue)
}

// MustGetFloat retrieves a float64 parameter value or returns the default
func (p *Parser) MustGetFloat(name string, defaultValue float64) float64 {
	return ParamOr(p, name, defaultValue)
}

// MustGetDuration retrieves a duration parameter value or returns the default
func (p *Parser) MustGetDuration(name string, defaultValue time.Duration) time.Duration {
	return ParamOr(p, name, defaultValue)
}
