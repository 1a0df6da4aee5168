package descriptor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/toyz/forge/internal/identifier"
)

// providerSuffix is appended to every computed provider name
const providerSuffix = "Provider"

// ComputeProviderNames derives a unique, stable provider name for every
// distinct injected key across the given factory methods.
//
// A key observed under exactly one distinct parameter name becomes
// `<name>Provider`. A key observed under several names (different call
// sites naming the same injected value differently) falls back to the
// sanitized canonical form of the key itself. A key with no recorded names
// cannot occur: keys only enter the collection through a parameter that
// carries a name, so that case panics as a programming error.
//
// Values in the returned map are globally unique: when two different keys
// would claim the same preferred name, each falls back to its sanitized
// key form, and any residual duplicates get a deterministic numeric suffix.
func ComputeProviderNames(methods []FactoryMethodDescriptor) map[Key]string {
	order, namesByKey := collectParameterNames(methods)

	providerNames := make(map[Key]string, len(order))
	for _, key := range order {
		observed := namesByKey[key]
		switch len(observed) {
		case 0:
			panic(fmt.Sprintf("no parameter names recorded for key %s", key))
		case 1:
			providerNames[key] = observed[0] + providerSuffix
		default:
			providerNames[key] = identifier.Sanitize(key.String()) + providerSuffix
		}
	}

	ensureUniqueNames(order, providerNames)
	return providerNames
}

// ProviderKeys returns the distinct injected keys in first-seen order.
// Go maps do not preserve insertion order, so emitters that need stable
// output iterate these keys and look names up in the computed map.
func ProviderKeys(methods []FactoryMethodDescriptor) []Key {
	order, _ := collectParameterNames(methods)
	return order
}

// collectParameterNames builds the key -> observed-parameter-names multimap,
// preserving first-seen order of both keys and names and dropping repeats
// of an identical name for the same key
func collectParameterNames(methods []FactoryMethodDescriptor) ([]Key, map[Key][]string) {
	var order []Key
	namesByKey := make(map[Key][]string)

	for _, method := range methods {
		for _, parameter := range method.ProvidedParameters() {
			if _, seen := namesByKey[parameter.Key]; !seen {
				order = append(order, parameter.Key)
			}
			if !slices.Contains(namesByKey[parameter.Key], parameter.Name) {
				namesByKey[parameter.Key] = append(namesByKey[parameter.Key], parameter.Name)
			}
		}
	}
	return order, namesByKey
}

// ensureUniqueNames resolves cross-key collisions. A preferred name claimed
// by more than one key is replaced per claimant with the sanitized canonical
// form of that claimant's key, which distinguishes keys that merely share a
// parameter name. Distinct keys whose canonical forms sanitize to the same
// string get a numeric suffix in first-seen key order.
func ensureUniqueNames(order []Key, providerNames map[Key]string) {
	claimants := make(map[string][]Key, len(order))
	for _, key := range order {
		name := providerNames[key]
		claimants[name] = append(claimants[name], key)
	}
	for _, keys := range claimants {
		if len(keys) < 2 {
			continue
		}
		for _, key := range keys {
			providerNames[key] = identifier.Sanitize(key.String()) + providerSuffix
		}
	}

	used := make(map[string]bool, len(order))
	for _, key := range order {
		name := providerNames[key]
		if !used[name] {
			used[name] = true
			continue
		}
		base := strings.TrimSuffix(name, providerSuffix)
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s%d%s", base, n, providerSuffix)
			if !used[candidate] {
				providerNames[key] = candidate
				used[candidate] = true
				break
			}
		}
	}
}
