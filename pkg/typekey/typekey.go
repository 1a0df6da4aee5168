package typekey

// TypeKey is an opaque, structurally-derived identity for a type. Two keys
// are equal exactly when the identity provider that produced them considers
// the underlying types equivalent, regardless of how the types were spelled
// in source. TypeKey is comparable and safe to use as a map key.
type TypeKey struct {
	canonical string
}

// Make creates a TypeKey from an already-resolved canonical form. Callers
// normally obtain keys through a Registry backed by a real Identity; Make
// exists for identity providers themselves and for tests.
func Make(canonical string) TypeKey {
	return TypeKey{canonical: canonical}
}

// String returns the canonical form of the type
func (k TypeKey) String() string {
	return k.canonical
}

// IsZero reports whether the key identifies no type at all
func (k TypeKey) IsZero() bool {
	return k.canonical == ""
}

// Identity is the capability this package requires from a host type system.
// Canonical must return the same string for any two representations the
// host considers equivalent (including generic instantiations), and
// different strings otherwise. The core never resolves types itself.
type Identity[T any] interface {
	// Canonical returns the fully resolved canonical form of t
	Canonical(t T) string

	// Equivalent reports whether a and b are the same type under the host
	// type system's notion of sameness
	Equivalent(a, b T) bool
}
