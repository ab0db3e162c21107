package v1alpha1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/runtime"
)

func Test_addKnownTypes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		scheme := runtime.NewScheme()
		err := addKnownTypes(scheme)
		require.NoError(t, err)
		assert.True(t, scheme.Recognizes(GroupVersion.WithKind("Configuration")))
	})

	t.Run("Defaulting", func(t *testing.T) {
		scheme := runtime.NewScheme()
		require.NoError(t, AddToScheme(scheme))

		c := &Configuration{}
		scheme.Default(c)
		assert.Equal(t, OutputYAML, c.OutputFormat)
		assert.Equal(t, "Configuration", c.Kind)
	})
}
