// Package main generates JSON Schema definitions of the gitkit configuration.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/act3-ai/go-common/pkg/genschema"

	"github.com/act3-ai/gitkit/pkg/apis"
	"github.com/act3-ai/gitkit/pkg/apis/gitkit.act3-ai.io/v1alpha1"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Must specify a target directory for schema generation.")
	}

	if err := genschema.GenerateGroupSchemas(
		os.Args[1],
		apis.NewScheme(),
		[]string{v1alpha1.Group},
		v1alpha1.Repository,
	); err != nil {
		log.Fatal(fmt.Errorf("JSON Schema generation failed: %w", err))
	}
}
