package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// modelArtifact is the on-disk representation of a trained model.
// It carries everything needed to reproduce predictions exactly: the tree
// ensemble, the label encoding, and the feature column order.
type modelArtifact struct {
	Version        int      `json:"version"`
	Classes        []string `json:"classes"`
	FeatureColumns []string `json:"feature_columns"`
	Forest         *forest  `json:"forest"`
}

// artifactVersion guards against loading artifacts written by an
// incompatible model layout
const artifactVersion = 1

// ArtifactMissingError indicates no model artifact exists at the configured path
type ArtifactMissingError struct {
	Path string
}

func (e *ArtifactMissingError) Error() string {
	return fmt.Sprintf("model artifact not found: %s", e.Path)
}

// errArtifactMissing unwraps an error into an ArtifactMissingError if it is one
func errArtifactMissing(err error) (*ArtifactMissingError, bool) {
	var missing *ArtifactMissingError
	if errors.As(err, &missing) {
		return missing, true
	}
	return nil, false
}

// SaveModel persists the trained model to the configured artifact path
func (c *Classifier) SaveModel() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.forest == nil {
		return fmt.Errorf("no model to save; train the model first")
	}
	if c.modelPath == "" {
		return fmt.Errorf("no model path configured")
	}

	artifact := modelArtifact{
		Version:        artifactVersion,
		Classes:        c.classes,
		FeatureColumns: featureColumns,
		Forest:         c.forest,
	}

	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("failed to encode model artifact: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.modelPath), 0o755); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}
	if err := os.WriteFile(c.modelPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model artifact: %w", err)
	}

	return nil
}

// LoadModel restores a trained model from the configured artifact path.
// A reloaded model reproduces the exact predictions of the saved one.
func (c *Classifier) LoadModel() error {
	if c.modelPath == "" {
		return &ArtifactMissingError{Path: "(no model path configured)"}
	}

	data, err := os.ReadFile(c.modelPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ArtifactMissingError{Path: c.modelPath}
		}
		return fmt.Errorf("failed to read model artifact %s: %w", c.modelPath, err)
	}

	var artifact modelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return fmt.Errorf("failed to parse model artifact %s: %w", c.modelPath, err)
	}
	if artifact.Version != artifactVersion {
		return fmt.Errorf("unsupported model artifact version %d", artifact.Version)
	}
	if artifact.Forest == nil || len(artifact.Classes) == 0 {
		return fmt.Errorf("model artifact %s is incomplete", c.modelPath)
	}

	c.mu.Lock()
	c.forest = artifact.Forest
	c.classes = artifact.Classes
	c.mu.Unlock()

	return nil
}
