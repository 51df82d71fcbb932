package service

import "context"

// Classifier predicts a satisfaction class from a course rating
type Classifier interface {
	// Classify returns the model's integer class for a single rating
	Classify(ctx context.Context, rating float64) (int, error)

	// Classes returns how many classes the model can emit
	Classes() int
}
