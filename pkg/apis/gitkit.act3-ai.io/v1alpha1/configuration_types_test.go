package v1alpha1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/act3-ai/gitkit/pkg/gittypes"
)

func TestConfigurationDefault(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		expected := &Configuration{
			TypeMeta: metav1.TypeMeta{
				Kind:       "Configuration",
				APIVersion: GroupVersion.String(),
			},
			ConfigurationSpec: ConfigurationSpec{
				OutputFormat:     OutputYAML,
				ProgressInterval: &metav1.Duration{Duration: DefaultProgressInterval},
			},
		}

		in := &Configuration{}
		ConfigurationDefault(in)

		assert.Equal(t, expected, in)
	})

	t.Run("Keeps Values", func(t *testing.T) {
		in := &Configuration{
			ConfigurationSpec: ConfigurationSpec{
				OutputFormat:     OutputJSON,
				ProgressInterval: &metav1.Duration{Duration: time.Second},
				ConfigLevel:      gittypes.LevelGlobal,
			},
		}
		ConfigurationDefault(in)

		assert.Equal(t, OutputJSON, in.OutputFormat)
		assert.Equal(t, time.Second, in.ProgressInterval.Duration)
		assert.Equal(t, gittypes.LevelGlobal, in.ConfigLevel)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.NotPanics(t, func() { ConfigurationDefault(nil) })
	})
}

func TestConfigurationSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    ConfigurationSpec
		wantErr bool
	}{
		{"Empty", ConfigurationSpec{}, false},
		{"Success", ConfigurationSpec{OutputFormat: OutputJSON, ProgressInterval: &metav1.Duration{Duration: time.Second}, ConfigLevel: gittypes.LevelRepository}, false},
		{"Bad Format", ConfigurationSpec{OutputFormat: "toml"}, true},
		{"Bad Interval", ConfigurationSpec{ProgressInterval: &metav1.Duration{}}, true},
		{"Bad Level", ConfigurationSpec{ConfigLevel: "worktree"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}
