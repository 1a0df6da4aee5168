package descriptor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/forge/pkg/typekey"
)

// keyOf builds an unqualified key directly from a canonical form; tests do
// not need a real type system behind the identity
func keyOf(canonical string) Key {
	return Key{Type: typekey.Make(canonical)}
}

func widgetFactoryInputs() (string, typekey.TypeKey, []typekey.TypeKey, []FactoryMethodDescriptor, []ImplementationMethodDescriptor) {
	methods := []FactoryMethodDescriptor{
		NewFactoryMethod("create", keyOf("widgets.Widget").Type,
			Provided("executor", keyOf("sync.Locker")),
			Passed("name", keyOf("string")),
		),
		NewFactoryMethod("createDefault", keyOf("widgets.Widget").Type,
			Provided("executor", keyOf("sync.Locker")),
		),
	}
	implementation := []ImplementationMethodDescriptor{
		NewImplementationMethod("create", keyOf("widgets.Widget").Type,
			Passed("name", keyOf("string")),
		),
		NewImplementationMethod("describe", keyOf("string").Type),
	}
	return "widgets.WidgetFactory",
		keyOf("widgets.AbstractWidgetFactory").Type,
		[]typekey.TypeKey{typekey.Make("widgets.WidgetMaker")},
		methods,
		implementation
}

func TestNew_AssemblesDerivedFields(t *testing.T) {
	name, extending, implementing, methods, implementationMethods := widgetFactoryInputs()

	d, err := New(name, extending, implementing, true, methods, implementationMethods, false)
	require.NoError(t, err)

	assert.Equal(t, "widgets.WidgetFactory", d.Name())
	assert.Equal(t, "widgets.AbstractWidgetFactory", d.ExtendingType().String())
	assert.True(t, d.PublicType())
	assert.False(t, d.AllowSubclasses())
	require.Len(t, d.ImplementingTypes(), 1)

	// Provider names derived from the provided parameters
	names := d.ProviderNames()
	require.Len(t, names, 1)
	assert.Equal(t, "executorProvider", names[keyOf("sync.Locker")])

	// The matching implementation method was removed, the other survived
	surviving := d.ImplementationMethodDescriptors()
	require.Len(t, surviving, 1)
	assert.Equal(t, "describe", surviving[0].Name())
}

func TestNew_InputsHaveSetSemantics(t *testing.T) {
	method := NewFactoryMethod("create", keyOf("widgets.Widget").Type, Passed("name", keyOf("string")))

	d, err := New(
		"widgets.WidgetFactory",
		keyOf("widgets.AbstractWidgetFactory").Type,
		[]typekey.TypeKey{typekey.Make("widgets.WidgetMaker"), typekey.Make("widgets.WidgetMaker")},
		false,
		[]FactoryMethodDescriptor{method, method},
		nil,
		false,
	)
	require.NoError(t, err)

	assert.Len(t, d.MethodDescriptors(), 1)
	assert.Len(t, d.ImplementingTypes(), 1)
}

func TestNew_Determinism(t *testing.T) {
	name, extending, implementing, methods, implementationMethods := widgetFactoryInputs()

	first, err := New(name, extending, implementing, true, methods, implementationMethods, true)
	require.NoError(t, err)
	second, err := New(name, extending, implementing, true, methods, implementationMethods, true)
	require.NoError(t, err)

	assert.Equal(t, first.ProviderNames(), second.ProviderNames())
	assert.Equal(t, first.ProviderKeys(), second.ProviderKeys())
	assert.Equal(t, first.ImplementationMethodDescriptors(), second.ImplementationMethodDescriptors())
	assert.True(t, first.Equal(second))
}

func TestNew_AccessorsReturnConstructionTimeValues(t *testing.T) {
	name, extending, implementing, methods, implementationMethods := widgetFactoryInputs()

	d, err := New(name, extending, implementing, true, methods, implementationMethods, false)
	require.NoError(t, err)

	// Mutating a returned collection must not affect later reads
	stolen := d.ProviderNames()
	for key := range stolen {
		stolen[key] = "corrupted"
	}
	fresh := d.ProviderNames()
	assert.Equal(t, "executorProvider", fresh[keyOf("sync.Locker")])

	stolenKeys := d.ProviderKeys()
	if len(stolenKeys) > 0 {
		stolenKeys[0] = Key{}
	}
	assert.Equal(t, keyOf("sync.Locker"), d.ProviderKeys()[0])

	stolenMethods := d.MethodDescriptors()
	stolenMethods[0] = FactoryMethodDescriptor{}
	assert.Equal(t, "create", d.MethodDescriptors()[0].Name())
}

func TestNew_InputSliceMutationAfterConstruction(t *testing.T) {
	methods := []FactoryMethodDescriptor{
		NewFactoryMethod("create", keyOf("widgets.Widget").Type, Provided("executor", keyOf("sync.Locker"))),
	}

	d, err := New("widgets.WidgetFactory", keyOf("widgets.Base").Type, nil, false, methods, nil, false)
	require.NoError(t, err)

	methods[0] = NewFactoryMethod("hijacked", keyOf("widgets.Widget").Type)

	require.Len(t, d.MethodDescriptors(), 1)
	assert.Equal(t, "create", d.MethodDescriptors()[0].Name())
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	valid := NewFactoryMethod("create", keyOf("widgets.Widget").Type, Passed("name", keyOf("string")))

	tests := []struct {
		name  string
		build func() (*FactoryDescriptor, error)
		code  ErrorCode
	}{
		{
			name: "empty factory name",
			build: func() (*FactoryDescriptor, error) {
				return New("", keyOf("widgets.Base").Type, nil, false, []FactoryMethodDescriptor{valid}, nil, false)
			},
			code: InvalidNameCode,
		},
		{
			name: "malformed factory name",
			build: func() (*FactoryDescriptor, error) {
				return New("widgets..Factory", keyOf("widgets.Base").Type, nil, false, []FactoryMethodDescriptor{valid}, nil, false)
			},
			code: InvalidNameCode,
		},
		{
			name: "zero extending type",
			build: func() (*FactoryDescriptor, error) {
				return New("widgets.WidgetFactory", typekey.TypeKey{}, nil, false, []FactoryMethodDescriptor{valid}, nil, false)
			},
			code: InvalidTypeCode,
		},
		{
			name: "zero implementing type",
			build: func() (*FactoryDescriptor, error) {
				return New("widgets.WidgetFactory", keyOf("widgets.Base").Type, []typekey.TypeKey{{}}, false, []FactoryMethodDescriptor{valid}, nil, false)
			},
			code: InvalidTypeCode,
		},
		{
			name: "invalid method name",
			build: func() (*FactoryDescriptor, error) {
				bad := NewFactoryMethod("new-widget", keyOf("widgets.Widget").Type)
				return New("widgets.WidgetFactory", keyOf("widgets.Base").Type, nil, false, []FactoryMethodDescriptor{bad}, nil, false)
			},
			code: InvalidMethodCode,
		},
		{
			name: "invalid parameter name",
			build: func() (*FactoryDescriptor, error) {
				bad := NewFactoryMethod("create", keyOf("widgets.Widget").Type, Passed("1name", keyOf("string")))
				return New("widgets.WidgetFactory", keyOf("widgets.Base").Type, nil, false, []FactoryMethodDescriptor{bad}, nil, false)
			},
			code: InvalidParameterCode,
		},
		{
			name: "parameter without type",
			build: func() (*FactoryDescriptor, error) {
				bad := NewFactoryMethod("create", keyOf("widgets.Widget").Type, Passed("name", Key{}))
				return New("widgets.WidgetFactory", keyOf("widgets.Base").Type, nil, false, []FactoryMethodDescriptor{bad}, nil, false)
			},
			code: InvalidParameterCode,
		},
		{
			name: "unknown parameter role",
			build: func() (*FactoryDescriptor, error) {
				bad := NewFactoryMethod("create", keyOf("widgets.Widget").Type,
					Parameter{Name: "name", Key: keyOf("string"), Role: Role(42)})
				return New("widgets.WidgetFactory", keyOf("widgets.Base").Type, nil, false, []FactoryMethodDescriptor{bad}, nil, false)
			},
			code: InvalidParameterCode,
		},
		{
			name: "invalid implementation method",
			build: func() (*FactoryDescriptor, error) {
				bad := NewImplementationMethod("", keyOf("widgets.Widget").Type)
				return New("widgets.WidgetFactory", keyOf("widgets.Base").Type, nil, false, nil,
					[]ImplementationMethodDescriptor{bad}, false)
			},
			code: InvalidMethodCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.build()
			require.Error(t, err)
			assert.Nil(t, d, "no partial aggregate may escape on failure")

			var descriptorErr *DescriptorError
			require.True(t, errors.As(err, &descriptorErr), "expected *DescriptorError, got %T", err)
			assert.Equal(t, tt.code, descriptorErr.Code)
		})
	}
}

func TestFactoryDescriptor_Equal(t *testing.T) {
	name, extending, implementing, methods, implementationMethods := widgetFactoryInputs()

	first, err := New(name, extending, implementing, true, methods, implementationMethods, false)
	require.NoError(t, err)
	second, err := New(name, extending, implementing, true, methods, implementationMethods, false)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.True(t, second.Equal(first))
	assert.True(t, first.Equal(first))

	// Method set order does not affect equality
	reordered := []FactoryMethodDescriptor{methods[1], methods[0]}
	third, err := New(name, extending, implementing, true, reordered, implementationMethods, false)
	require.NoError(t, err)
	assert.True(t, first.Equal(third))

	// A differing field breaks equality
	fourth, err := New(name, extending, implementing, false, methods, implementationMethods, false)
	require.NoError(t, err)
	assert.False(t, first.Equal(fourth))

	assert.False(t, first.Equal(nil))
}

func TestDescriptorBuilder(t *testing.T) {
	d, err := NewDescriptorBuilder("widgets.WidgetFactory").
		Extending(typekey.Make("widgets.AbstractWidgetFactory")).
		Implementing(typekey.Make("widgets.WidgetMaker")).
		Public(true).
		WithMethods(
			NewFactoryMethod("create", keyOf("widgets.Widget").Type,
				Provided("executor", keyOf("sync.Locker")),
				Passed("name", keyOf("string")),
			),
		).
		WithImplementationMethods(
			NewImplementationMethod("create", keyOf("widgets.Widget").Type,
				Passed("name", keyOf("string")),
			),
		).
		AllowSubclasses(true).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "widgets.WidgetFactory", d.Name())
	assert.True(t, d.PublicType())
	assert.True(t, d.AllowSubclasses())
	assert.Empty(t, d.ImplementationMethodDescriptors())

	name, exists := d.ProviderName(keyOf("sync.Locker"))
	require.True(t, exists)
	assert.Equal(t, "executorProvider", name)
}

func TestDescriptorBuilder_PropagatesValidationError(t *testing.T) {
	_, err := NewDescriptorBuilder("").
		Extending(typekey.Make("widgets.Base")).
		Build()

	var descriptorErr *DescriptorError
	require.True(t, errors.As(err, &descriptorErr))
	assert.Equal(t, InvalidNameCode, descriptorErr.Code)
}
