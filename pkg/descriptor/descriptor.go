package descriptor

import (
	"fmt"
	"maps"

	"github.com/toyz/forge/internal/validate"
	"github.com/toyz/forge/pkg/typekey"
)

// FactoryDescriptor is the immutable aggregate describing one generated
// factory class: its identity, the types it extends and implements, the
// methods it exposes, and the derived provider names and deduplicated
// implementation-method set. All fields are fixed at construction; every
// accessor returns the construction-time value.
type FactoryDescriptor struct {
	name                  string
	extendingType         typekey.TypeKey
	implementingTypes     []typekey.TypeKey
	publicType            bool
	methods               []FactoryMethodDescriptor
	implementationMethods []ImplementationMethodDescriptor
	allowSubclasses       bool
	providerNames         map[Key]string
	providerKeys          []Key
}

var (
	factoryNameChain = validate.NewChain(validate.QualifiedName("name"))

	methodNameChain = validate.NewChain(
		validate.NotEmpty("method name"),
		validate.GoIdentifier("method name"),
	)

	parameterNameChain = validate.NewChain(
		validate.NotEmpty("parameter name"),
		validate.GoIdentifier("parameter name"),
	)
)

// New validates the caller-supplied data, derives the provider-name map and
// the deduplicated implementation-method set, and assembles the aggregate.
// It is the sole construction path: either every field of the result is
// complete and consistent, or an error is returned and nothing escapes.
//
// Input slices carry set semantics: exact duplicates are dropped, first
// occurrence wins, and the caller's iteration order is preserved so
// generated output stays stable across rebuilds.
func New(
	name string,
	extendingType typekey.TypeKey,
	implementingTypes []typekey.TypeKey,
	publicType bool,
	methods []FactoryMethodDescriptor,
	implementationMethods []ImplementationMethodDescriptor,
	allowSubclasses bool,
) (*FactoryDescriptor, error) {
	if err := validateInputs(name, extendingType, implementingTypes, methods, implementationMethods); err != nil {
		return nil, err
	}

	methodSet := dedupeFactoryMethods(methods)

	return &FactoryDescriptor{
		name:                  name,
		extendingType:         extendingType,
		implementingTypes:     dedupeTypeKeys(implementingTypes),
		publicType:            publicType,
		methods:               methodSet,
		implementationMethods: DedupeImplementationMethods(methodSet, implementationMethods),
		allowSubclasses:       allowSubclasses,
		providerNames:         ComputeProviderNames(methodSet),
		providerKeys:          ProviderKeys(methodSet),
	}, nil
}

// Name returns the factory name
func (d *FactoryDescriptor) Name() string {
	return d.name
}

// ExtendingType returns the type the generated factory extends
func (d *FactoryDescriptor) ExtendingType() typekey.TypeKey {
	return d.extendingType
}

// ImplementingTypes returns the interfaces the generated factory implements,
// in first-seen order
func (d *FactoryDescriptor) ImplementingTypes() []typekey.TypeKey {
	cloned := make([]typekey.TypeKey, len(d.implementingTypes))
	copy(cloned, d.implementingTypes)
	return cloned
}

// PublicType reports whether the generated factory is public
func (d *FactoryDescriptor) PublicType() bool {
	return d.publicType
}

// MethodDescriptors returns the factory methods in first-seen order
func (d *FactoryDescriptor) MethodDescriptors() []FactoryMethodDescriptor {
	cloned := make([]FactoryMethodDescriptor, len(d.methods))
	copy(cloned, d.methods)
	return cloned
}

// ImplementationMethodDescriptors returns the implementation methods that
// survived deduplication, in their original order
func (d *FactoryDescriptor) ImplementationMethodDescriptors() []ImplementationMethodDescriptor {
	cloned := make([]ImplementationMethodDescriptor, len(d.implementationMethods))
	copy(cloned, d.implementationMethods)
	return cloned
}

// AllowSubclasses reports whether the generated factory may be subclassed
func (d *FactoryDescriptor) AllowSubclasses() bool {
	return d.allowSubclasses
}

// ProviderNames returns the derived key-to-provider-name map
func (d *FactoryDescriptor) ProviderNames() map[Key]string {
	return maps.Clone(d.providerNames)
}

// ProviderKeys returns the distinct injected keys in first-seen order, for
// emitters that need deterministic iteration
func (d *FactoryDescriptor) ProviderKeys() []Key {
	cloned := make([]Key, len(d.providerKeys))
	copy(cloned, d.providerKeys)
	return cloned
}

// ProviderName returns the provider name derived for the given key
func (d *FactoryDescriptor) ProviderName(key Key) (string, bool) {
	name, exists := d.providerNames[key]
	return name, exists
}

// Equal reports whether two descriptors are the same value. Descriptor sets
// compare order-insensitively; derived fields participate like any other.
func (d *FactoryDescriptor) Equal(other *FactoryDescriptor) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return d.name == other.name &&
		d.extendingType == other.extendingType &&
		d.publicType == other.publicType &&
		d.allowSubclasses == other.allowSubclasses &&
		typeKeySetsEqual(d.implementingTypes, other.implementingTypes) &&
		factoryMethodSetsEqual(d.methods, other.methods) &&
		implementationMethodSetsEqual(d.implementationMethods, other.implementationMethods) &&
		maps.Equal(d.providerNames, other.providerNames)
}

func validateInputs(
	name string,
	extendingType typekey.TypeKey,
	implementingTypes []typekey.TypeKey,
	methods []FactoryMethodDescriptor,
	implementationMethods []ImplementationMethodDescriptor,
) error {
	if err := factoryNameChain.Validate(name); err != nil {
		return newDescriptorError(InvalidNameCode, name, "name", err)
	}
	if extendingType.IsZero() {
		return &DescriptorError{
			Code:       InvalidTypeCode,
			Descriptor: name,
			Field:      "extendingType",
			Message:    "must identify a type",
		}
	}
	for i, implementingType := range implementingTypes {
		if implementingType.IsZero() {
			return &DescriptorError{
				Code:       InvalidTypeCode,
				Descriptor: name,
				Field:      fmt.Sprintf("implementingTypes[%d]", i),
				Message:    "must identify a type",
			}
		}
	}
	for _, method := range methods {
		if err := validateSignature(name, method.methodSignature); err != nil {
			return err
		}
	}
	for _, method := range implementationMethods {
		if err := validateSignature(name, method.methodSignature); err != nil {
			return err
		}
	}
	return nil
}

func validateSignature(descriptorName string, signature methodSignature) error {
	if err := methodNameChain.Validate(signature.name); err != nil {
		return newDescriptorError(InvalidMethodCode, descriptorName, fmt.Sprintf("method '%s'", signature.name), err)
	}
	for _, parameter := range signature.parameters {
		field := fmt.Sprintf("%s(%s)", signature.name, parameter.Name)
		if err := parameterNameChain.Validate(parameter.Name); err != nil {
			return newDescriptorError(InvalidParameterCode, descriptorName, field, err)
		}
		if parameter.Key.Type.IsZero() {
			return &DescriptorError{
				Code:       InvalidParameterCode,
				Descriptor: descriptorName,
				Field:      field,
				Message:    "parameter key must identify a type",
			}
		}
		switch parameter.Role {
		case RoleProvided, RolePassed:
		default:
			return &DescriptorError{
				Code:       InvalidParameterCode,
				Descriptor: descriptorName,
				Field:      field,
				Message:    fmt.Sprintf("unknown parameter role %d", parameter.Role),
			}
		}
	}
	return nil
}

func dedupeFactoryMethods(methods []FactoryMethodDescriptor) []FactoryMethodDescriptor {
	deduped := make([]FactoryMethodDescriptor, 0, len(methods))
	for _, method := range methods {
		if !containsFactoryMethod(deduped, method) {
			deduped = append(deduped, method)
		}
	}
	return deduped
}

func dedupeTypeKeys(keys []typekey.TypeKey) []typekey.TypeKey {
	deduped := make([]typekey.TypeKey, 0, len(keys))
	seen := make(map[typekey.TypeKey]bool, len(keys))
	for _, key := range keys {
		if !seen[key] {
			seen[key] = true
			deduped = append(deduped, key)
		}
	}
	return deduped
}

func typeKeySetsEqual(a, b []typekey.TypeKey) bool {
	if len(a) != len(b) {
		return false
	}
	members := make(map[typekey.TypeKey]bool, len(a))
	for _, key := range a {
		members[key] = true
	}
	for _, key := range b {
		if !members[key] {
			return false
		}
	}
	return true
}

func factoryMethodSetsEqual(a, b []FactoryMethodDescriptor) bool {
	if len(a) != len(b) {
		return false
	}
	for _, method := range a {
		if !containsFactoryMethod(b, method) {
			return false
		}
	}
	return true
}

func implementationMethodSetsEqual(a, b []ImplementationMethodDescriptor) bool {
	if len(a) != len(b) {
		return false
	}
	for _, method := range a {
		if !containsImplementationMethod(b, method) {
			return false
		}
	}
	return true
}
