package descriptor

// Role says how a factory method obtains a parameter's value
type Role int

const (
	// RoleProvided marks a parameter supplied by an injected provider
	RoleProvided Role = iota

	// RolePassed marks a parameter supplied by the caller
	RolePassed
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RoleProvided:
		return "provided"
	case RolePassed:
		return "passed"
	default:
		return "unknown"
	}
}

// Parameter is a named, typed value owned by a method descriptor. It is an
// immutable value; its lifetime is scoped to the descriptor holding it.
type Parameter struct {
	Name string // parameter name, a valid Go identifier
	Key  Key    // what the parameter's value is
	Role Role   // how the value is obtained
}

// Provided creates a parameter whose value comes from an injected provider
func Provided(name string, key Key) Parameter {
	return Parameter{Name: name, Key: key, Role: RoleProvided}
}

// Passed creates a parameter whose value comes from the caller
func Passed(name string, key Key) Parameter {
	return Parameter{Name: name, Key: key, Role: RolePassed}
}

func cloneParameters(parameters []Parameter) []Parameter {
	if len(parameters) == 0 {
		return nil
	}
	cloned := make([]Parameter, len(parameters))
	copy(cloned, parameters)
	return cloned
}

func filterParameters(parameters []Parameter, role Role) []Parameter {
	var filtered []Parameter
	for _, parameter := range parameters {
		if parameter.Role == role {
			filtered = append(filtered, parameter)
		}
	}
	return filtered
}

func parametersEqual(a, b []Parameter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
