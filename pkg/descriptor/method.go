package descriptor

import "github.com/toyz/forge/pkg/typekey"

// methodSignature carries the shape shared by both descriptor variants:
// a name, a return type, and an ordered parameter list
type methodSignature struct {
	name       string
	returnType typekey.TypeKey
	parameters []Parameter
}

// Name returns the method name
func (s methodSignature) Name() string {
	return s.name
}

// ReturnType returns the type the method produces. It is carried for the
// emitter and does not participate in signature deduplication.
func (s methodSignature) ReturnType() typekey.TypeKey {
	return s.returnType
}

// Parameters returns the ordered parameter list
func (s methodSignature) Parameters() []Parameter {
	return cloneParameters(s.parameters)
}

// ProvidedParameters returns the parameters injected via providers,
// in declaration order
func (s methodSignature) ProvidedParameters() []Parameter {
	return filterParameters(s.parameters, RoleProvided)
}

// PassedParameters returns the parameters the caller supplies,
// in declaration order
func (s methodSignature) PassedParameters() []Parameter {
	return filterParameters(s.parameters, RolePassed)
}

func (s methodSignature) equal(other methodSignature) bool {
	return s.name == other.name &&
		s.returnType == other.returnType &&
		parametersEqual(s.parameters, other.parameters)
}

// FactoryMethodDescriptor describes one method the generated factory must
// expose. Immutable value; parameter order is the declaration order.
type FactoryMethodDescriptor struct {
	methodSignature
}

// NewFactoryMethod creates a factory method descriptor. The parameter list
// is copied, so later mutation of the caller's slice has no effect.
func NewFactoryMethod(name string, returnType typekey.TypeKey, parameters ...Parameter) FactoryMethodDescriptor {
	return FactoryMethodDescriptor{methodSignature{
		name:       name,
		returnType: returnType,
		parameters: cloneParameters(parameters),
	}}
}

// Equal reports whether two factory method descriptors are the same value
func (m FactoryMethodDescriptor) Equal(other FactoryMethodDescriptor) bool {
	return m.methodSignature.equal(other.methodSignature)
}

// ImplementationMethodDescriptor describes a method on the type being
// constructed that may be redundant with a factory method. It has the same
// shape as FactoryMethodDescriptor but is a distinct type: the two are
// never interchangeable.
type ImplementationMethodDescriptor struct {
	methodSignature
}

// NewImplementationMethod creates an implementation method descriptor
func NewImplementationMethod(name string, returnType typekey.TypeKey, parameters ...Parameter) ImplementationMethodDescriptor {
	return ImplementationMethodDescriptor{methodSignature{
		name:       name,
		returnType: returnType,
		parameters: cloneParameters(parameters),
	}}
}

// Equal reports whether two implementation method descriptors are the same value
func (m ImplementationMethodDescriptor) Equal(other ImplementationMethodDescriptor) bool {
	return m.methodSignature.equal(other.methodSignature)
}
