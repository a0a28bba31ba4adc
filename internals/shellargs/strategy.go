package shellargs

// Resolver looks up the value of a template variable.
// The second return value is false if the variable is not defined.
type Resolver interface {
	Resolve(name string) (string, bool)
}

// ResolverFunc is a function used as a Resolver
type ResolverFunc func(name string) (string, bool)

// Resolve calls f(name)
func (f ResolverFunc) Resolve(name string) (string, bool) {
	return f(name)
}

// MapResolver resolves variables from a map
type MapResolver map[string]string

// Resolve returns the mapped value
func (m MapResolver) Resolve(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Strategy decides how quotes, escapes and variables are treated.
// Use [Ignore] or [Map] to create one.
type Strategy struct {
	expand   bool
	resolver Resolver
}

// Ignore keeps quotes, escapes and variable references as they are.
// Only the whitespace between tokens is normalized.
func Ignore() Strategy {
	return Strategy{}
}

// Map strips quotes and escapes and replaces every variable reference
// with its value. Undefined variables are replaced with an empty string.
func Map(r Resolver) Strategy {
	return Strategy{expand: true, resolver: r}
}

// Expands reports if this is a [Map] strategy
func (s Strategy) Expands() bool {
	return s.expand
}

func (s Strategy) lookup(name string) string {
	if s.resolver == nil {
		return ""
	}
	v, _ := s.resolver.Resolve(name)
	return v
}
