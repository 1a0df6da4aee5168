package descriptor

import (
	"fmt"

	"github.com/toyz/forge/pkg/typekey"
)

// Qualifier identifies an optional qualifier annotation on an injected
// value, such as a named binding. The zero value means unqualified.
// Equality is structural.
type Qualifier struct {
	Name  string
	Value string
}

// IsZero reports whether the qualifier is absent
func (q Qualifier) IsZero() bool {
	return q == Qualifier{}
}

// String renders the qualifier in annotation form, e.g. `@Named("backup")`
func (q Qualifier) String() string {
	if q.Value == "" {
		return "@" + q.Name
	}
	return fmt.Sprintf("@%s(%q)", q.Name, q.Value)
}

// Key identifies what must be injected: a value of a given type, optionally
// qualified. Keys are immutable, comparable, and usable as map keys; two
// keys are equal exactly when both the type identity and the qualifier
// match.
type Key struct {
	Type      typekey.TypeKey
	Qualifier Qualifier
}

// IsZero reports whether the key identifies nothing
func (k Key) IsZero() bool {
	return k == Key{}
}

// String returns the canonical form of the key, e.g. `net/http.Client` or
// `@Named("backup") net/http.Client`. Provider names for keys that collect
// conflicting parameter names are derived from this form.
func (k Key) String() string {
	if k.Qualifier.IsZero() {
		return k.Type.String()
	}
	return k.Qualifier.String() + " " + k.Type.String()
}
