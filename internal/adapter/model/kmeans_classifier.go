package model

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cdipaolo/goml/cluster"

	"github.com/awaissaddiqui/Flask-Server/internal/domain/service"
)

// ErrInvalidModel is returned when a model file decodes but cannot be used
var ErrInvalidModel = errors.New("invalid model")

// KMeansClassifier serves predictions from a persisted goml k-means model.
// The class of a rating is the index of its nearest centroid.
// The model is never written after Load, so Classify is safe for concurrent use.
type KMeansClassifier struct {
	path   string
	kmeans *cluster.KMeans
}

var _ service.Classifier = (*KMeansClassifier)(nil)

// Load reads centroids persisted by goml's KMeans.PersistToFile, e.g. [[3.0], [4.5], [1.0]].
// Every centroid must have exactly one feature, the rating.
func Load(path string) (*KMeansClassifier, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open model %s: %w", path, err)
	}

	km := cluster.NewKMeans(0, 0, nil)
	if err := km.RestoreFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to restore model %s: %w", path, err)
	}

	if len(km.Centroids) == 0 {
		return nil, fmt.Errorf("%w: %s has no centroids", ErrInvalidModel, path)
	}
	for i, centroid := range km.Centroids {
		if len(centroid) != 1 {
			return nil, fmt.Errorf("%w: centroid %d has %d features, want 1", ErrInvalidModel, i, len(centroid))
		}
	}

	return &KMeansClassifier{path: path, kmeans: km}, nil
}

// Classify predicts the class for a single rating. The rating range is not checked.
func (c *KMeansClassifier) Classify(ctx context.Context, rating float64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	guess, err := c.kmeans.Predict([]float64{rating})
	if err != nil {
		return 0, fmt.Errorf("model prediction failed: %w", err)
	}
	if len(guess) == 0 {
		return 0, errors.New("model returned no prediction")
	}

	return int(guess[0]), nil
}

// Classes returns the number of centroids
func (c *KMeansClassifier) Classes() int {
	return len(c.kmeans.Centroids)
}

// Path returns the file the model was loaded from
func (c *KMeansClassifier) Path() string {
	return c.path
}
