package cmdutil

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/apiforge/cli/internal/errors"
	"github.com/apiforge/cli/internal/pipeline"
)

func TestBuildFlags_AddTo(t *testing.T) {
	var bf BuildFlags
	cmd := &cobra.Command{Use: "test"}
	bf.AddTo(cmd)

	modelsFlag := cmd.Flags().Lookup("models")
	require.NotNil(t, modelsFlag)
	assert.Equal(t, "m", modelsFlag.Shorthand)
	assert.Equal(t, "stringArray", modelsFlag.Value.Type())

	trFlag := cmd.Flags().Lookup("translations")
	require.NotNil(t, trFlag)
	assert.Equal(t, "t", trFlag.Shorthand)
	assert.Equal(t, "", trFlag.DefValue)
}

func TestBuildFlags_TranslationsFlag(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    bool
		wantSet bool
		wantErr bool
	}{
		{name: "unset", args: nil, want: false, wantSet: false},
		{name: "false", args: []string{"-t=false"}, want: false, wantSet: true},
		{name: "yes", args: []string{"--translations", "yes"}, want: true, wantSet: true},
		{name: "zero", args: []string{"-t", "0"}, want: false, wantSet: true},
		{name: "invalid", args: []string{"-t", "sometimes"}, wantSet: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bf BuildFlags
			cmd := &cobra.Command{Use: "test"}
			bf.AddTo(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			got, set, err := bf.TranslationsFlag(cmd)
			assert.Equal(t, tt.wantSet, set)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEntities(t *testing.T) {
	tests := []struct {
		name   string
		models []string
		args   []string
		want   []pipeline.EntitySpec
	}{
		{
			name:   "no models",
			models: nil,
			args:   nil,
			want:   []pipeline.EntitySpec{},
		},
		{
			name:   "models without attributes",
			models: []string{"User", "Post"},
			want: []pipeline.EntitySpec{
				{Name: "User"},
				{Name: "Post"},
			},
		},
		{
			name:   "attributes by position",
			models: []string{"Order", "Invoice"},
			args:   []string{"total:float, note ,,placed_at:datetime"},
			want: []pipeline.EntitySpec{
				{Name: "Order", Attributes: []string{"total:float", "note", "placed_at:datetime"}},
				{Name: "Invoice"},
			},
		},
		{
			name:   "empty list",
			models: []string{"Tag"},
			args:   []string{""},
			want:   []pipeline.EntitySpec{{Name: "Tag"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntities(tt.models, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEntities_ExtraArgs(t *testing.T) {
	_, err := ParseEntities([]string{"User"}, []string{"name", "email"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}
