package gotypes

import (
	"go/types"

	"github.com/toyz/forge/pkg/typekey"
)

// Identity implements typekey.Identity over the go/types representation.
// Canonical forms use fully qualified package paths and resolve aliases, so
// two spellings of the same type always collapse to one key. Equivalence
// delegates to types.Identical, which understands generic instantiation.
type Identity struct{}

var _ typekey.Identity[types.Type] = Identity{}

// Canonical returns the fully qualified, alias-free form of t
func (Identity) Canonical(t types.Type) string {
	return types.TypeString(types.Unalias(t), nil)
}

// Equivalent reports whether a and b are identical types
func (Identity) Equivalent(a, b types.Type) bool {
	return types.Identical(types.Unalias(a), types.Unalias(b))
}

// NewRegistry creates a TypeKey interning registry over go/types
func NewRegistry() *typekey.Registry[types.Type] {
	return typekey.NewRegistry[types.Type](Identity{})
}
