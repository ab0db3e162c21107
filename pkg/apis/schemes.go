// Package apis defines api schemas.
package apis

//go:generate go run ../../internal/gen ../../schemas

import (
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/act3-ai/gitkit/pkg/apis/gitkit.act3-ai.io/v1alpha1"
)

// NewScheme creates a new scheme with all gitkit API types registered.
func NewScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	schemeBuilder := runtime.NewSchemeBuilder(
		v1alpha1.AddToScheme,
	)
	if err := schemeBuilder.AddToScheme(scheme); err != nil {
		panic(err)
	}
	return scheme
}
