package artifact_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mind-screen-go/internal/config"
	"mind-screen-go/pkg/artifact"
)

const (
	testMetadata = `{"feature_names": ["Gender", "Age", "CGPA", "Profession_Student"]}`

	testEncoders = `{
		"Gender": {"classes": ["Female", "Male"]},
		"Have you ever had suicidal thoughts ?": {"classes": ["No", "Yes"]},
		"Family History of Mental Illness": {"classes": ["No", "Yes"]}
	}`

	testModel = `{
		"intercept": -1.5,
		"coefficients": {"Gender": 0.2, "Age": -0.1, "CGPA": 0.05, "Profession_Student": 0.3},
		"scaler": {"mean": {"Age": 30}, "scale": {"Age": 10}}
	}`
)

func writeArtifacts(t *testing.T, metadata, encoders, model string) config.ArtifactsConfig {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feature_metadata.json"), []byte(metadata), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "label_encoders.json"), []byte(encoders), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model.json"), []byte(model), 0o644))
	return config.ArtifactsConfig{
		Source:              "local",
		LocalDir:            dir,
		FeatureMetadataFile: "feature_metadata.json",
		LabelEncodersFile:   "label_encoders.json",
		ModelFile:           "model.json",
	}
}

func TestLoad_Local(t *testing.T) {
	cfg := writeArtifacts(t, testMetadata, testEncoders, testModel)

	bundle, err := artifact.Load(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"Gender", "Age", "CGPA", "Profession_Student"}, bundle.FeatureNames)
	assert.Equal(t, -1.5, bundle.Model.Intercept)
	assert.Equal(t, 0.3, bundle.Model.Coefficients["Profession_Student"])
	require.NotNil(t, bundle.Model.Scaler)
	assert.Equal(t, 30.0, bundle.Model.Scaler.Mean["Age"])

	code, err := bundle.Encoders["Gender"].Transform("Gender", "Male")
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg := writeArtifacts(t, testMetadata, testEncoders, testModel)
	cfg.ModelFile = "nope.json"

	_, err := artifact.Load(context.Background(), cfg)
	assert.Error(t, err)
}

func TestLoad_EmptyFeatureNames(t *testing.T) {
	cfg := writeArtifacts(t, `{"feature_names": []}`, testEncoders, testModel)

	_, err := artifact.Load(context.Background(), cfg)
	assert.Error(t, err)
}

func TestLoad_MissingRequiredEncoder(t *testing.T) {
	cfg := writeArtifacts(t, testMetadata, `{"Gender": {"classes": ["Female", "Male"]}}`, testModel)

	_, err := artifact.Load(context.Background(), cfg)
	assert.Error(t, err)
}

func TestLoad_EmptyCoefficients(t *testing.T) {
	cfg := writeArtifacts(t, testMetadata, testEncoders, `{"intercept": 0, "coefficients": {}}`)

	_, err := artifact.Load(context.Background(), cfg)
	assert.Error(t, err)
}

func TestLoad_UnknownSource(t *testing.T) {
	cfg := writeArtifacts(t, testMetadata, testEncoders, testModel)
	cfg.Source = "ftp"

	_, err := artifact.Load(context.Background(), cfg)
	assert.Error(t, err)
}
