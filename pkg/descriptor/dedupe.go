package descriptor

// DedupeImplementationMethods removes implementation methods that a factory
// method already covers: an implementation method is dropped when some
// factory method has the identical name and an equal caller-visible
// parameter-type signature. Survivors keep their first-seen order and the
// result holds no duplicates; nothing is ever added that was not in the
// input. Several factory methods matching the same implementation method is
// harmless, removal is idempotent.
func DedupeImplementationMethods(
	factoryMethods []FactoryMethodDescriptor,
	implementationMethods []ImplementationMethodDescriptor,
) []ImplementationMethodDescriptor {
	deduped := make([]ImplementationMethodDescriptor, 0, len(implementationMethods))

	for _, implementationMethod := range implementationMethods {
		if containsImplementationMethod(deduped, implementationMethod) {
			continue
		}
		if coveredByFactoryMethod(factoryMethods, implementationMethod) {
			continue
		}
		deduped = append(deduped, implementationMethod)
	}
	return deduped
}

// coveredByFactoryMethod reports whether a factory method makes the
// implementation method redundant. The comparison uses the passed parameter
// lists of both sides: provided parameters are invisible to callers and do
// not belong to the signature a caller sees.
func coveredByFactoryMethod(
	factoryMethods []FactoryMethodDescriptor,
	implementationMethod ImplementationMethodDescriptor,
) bool {
	for _, factoryMethod := range factoryMethods {
		if factoryMethod.Name() == implementationMethod.Name() &&
			parameterTypesEqual(factoryMethod.PassedParameters(), implementationMethod.PassedParameters()) {
			return true
		}
	}
	return false
}

// parameterTypesEqual compares two parameter lists pairwise and positionally
// by type identity alone; parameter names and roles do not participate
func parameterTypesEqual(a, b []Parameter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key.Type != b[i].Key.Type {
			return false
		}
	}
	return true
}

func containsImplementationMethod(methods []ImplementationMethodDescriptor, candidate ImplementationMethodDescriptor) bool {
	for _, method := range methods {
		if method.Equal(candidate) {
			return true
		}
	}
	return false
}

func containsFactoryMethod(methods []FactoryMethodDescriptor, candidate FactoryMethodDescriptor) bool {
	for _, method := range methods {
		if method.Equal(candidate) {
			return true
		}
	}
	return false
}
