// Package v1alpha1 defines the v1alpha1 schema.
//
// +kubebuilder:object:generate=true
package v1alpha1

import (
	"errors"
	"fmt"
	"slices"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/act3-ai/gitkit/pkg/gittypes"
)

// ErrInvalidConfiguration indicates a configuration value is not supported.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// DefaultProgressInterval is used when ProgressInterval is unset.
const DefaultProgressInterval = 500 * time.Millisecond

// OutputFormat selects how commands print structured results.
type OutputFormat string

// Supported output formats.
const (
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// OutputFormats lists the supported output formats.
var OutputFormats = []OutputFormat{OutputYAML, OutputJSON}

// +kubebuilder:object:root=true

// Configuration type is used to store a user's current configuration settings.
type Configuration struct {
	metav1.TypeMeta `json:",inline"`

	ConfigurationSpec `json:",inline"`
}

// ConfigurationSpec is the actual configuration values.
type ConfigurationSpec struct {
	// OutputFormat is the encoding of structured command output.
	OutputFormat OutputFormat `json:"outputFormat,omitempty"`

	// ProgressInterval is how often long running operations report progress.
	ProgressInterval *metav1.Duration `json:"progressInterval,omitempty"`

	// ConfigLevel is the git configuration level read when none is requested.
	// Empty reads every level merged.
	ConfigLevel gittypes.ConfigLevel `json:"configLevel,omitempty"`
}

// ConfigurationDefault the fields in Configuration.  The argument must be a Configuration.
func ConfigurationDefault(obj *Configuration) {
	if obj == nil {
		return
	}

	// Default the TypeMeta
	obj.APIVersion = GroupVersion.String()
	obj.Kind = "Configuration"

	if obj.OutputFormat == "" {
		obj.OutputFormat = OutputYAML
	}
	if obj.ProgressInterval == nil {
		obj.ProgressInterval = &metav1.Duration{Duration: DefaultProgressInterval}
	}
}

// Validate reports unsupported values.
func (c *ConfigurationSpec) Validate() error {
	var errs []error
	if c.OutputFormat != "" && !slices.Contains(OutputFormats, c.OutputFormat) {
		errs = append(errs, fmt.Errorf("%w: outputFormat %q, expected one of %v", ErrInvalidConfiguration, c.OutputFormat, OutputFormats))
	}
	if c.ProgressInterval != nil && c.ProgressInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("%w: progressInterval must be positive, got %s", ErrInvalidConfiguration, c.ProgressInterval.Duration))
	}
	if c.ConfigLevel != "" && !gittypes.IsConfigLevel(string(c.ConfigLevel)) {
		errs = append(errs, fmt.Errorf("%w: configLevel %q, expected one of %v", ErrInvalidConfiguration, c.ConfigLevel, gittypes.ConfigLevels))
	}
	return errors.Join(errs...)
}
