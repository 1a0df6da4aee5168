package descriptor

import "github.com/toyz/forge/pkg/typekey"

// DescriptorBuilder provides a fluent interface for assembling the inputs
// to a FactoryDescriptor. The builder only collects data; Build delegates
// to New, which remains the sole construction path.
type DescriptorBuilder struct {
	name                  string
	extendingType         typekey.TypeKey
	implementingTypes     []typekey.TypeKey
	publicType            bool
	methods               []FactoryMethodDescriptor
	implementationMethods []ImplementationMethodDescriptor
	allowSubclasses       bool
}

// NewDescriptorBuilder creates a builder for a factory with the given name
func NewDescriptorBuilder(name string) *DescriptorBuilder {
	return &DescriptorBuilder{name: name}
}

// Extending sets the type the generated factory extends
func (b *DescriptorBuilder) Extending(extendingType typekey.TypeKey) *DescriptorBuilder {
	b.extendingType = extendingType
	return b
}

// Implementing adds interfaces the generated factory implements
func (b *DescriptorBuilder) Implementing(implementingTypes ...typekey.TypeKey) *DescriptorBuilder {
	b.implementingTypes = append(b.implementingTypes, implementingTypes...)
	return b
}

// Public sets whether the generated factory is public
func (b *DescriptorBuilder) Public(public bool) *DescriptorBuilder {
	b.publicType = public
	return b
}

// WithMethods adds factory method descriptors
func (b *DescriptorBuilder) WithMethods(methods ...FactoryMethodDescriptor) *DescriptorBuilder {
	b.methods = append(b.methods, methods...)
	return b
}

// WithImplementationMethods adds implementation method descriptors
func (b *DescriptorBuilder) WithImplementationMethods(methods ...ImplementationMethodDescriptor) *DescriptorBuilder {
	b.implementationMethods = append(b.implementationMethods, methods...)
	return b
}

// AllowSubclasses sets whether the generated factory may be subclassed
func (b *DescriptorBuilder) AllowSubclasses(allow bool) *DescriptorBuilder {
	b.allowSubclasses = allow
	return b
}

// Build validates the collected inputs and constructs the immutable aggregate
func (b *DescriptorBuilder) Build() (*FactoryDescriptor, error) {
	return New(
		b.name,
		b.extendingType,
		b.implementingTypes,
		b.publicType,
		b.methods,
		b.implementationMethods,
		b.allowSubclasses,
	)
}
