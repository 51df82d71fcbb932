package usecase

import (
	"context"
	"fmt"

	"github.com/awaissaddiqui/Flask-Server/internal/domain/entity"
	"github.com/awaissaddiqui/Flask-Server/internal/domain/service"
)

// PredictionObserver is notified of every classified rating.
// level is empty when the class had no satisfaction label.
type PredictionObserver interface {
	ObservePrediction(level string)
}

// SatisfactionUsecase defines the interface for satisfaction prediction
type SatisfactionUsecase interface {
	// Predict classifies every record in order. The first record without a
	// rating aborts the call with a KindValidation error and no results.
	Predict(ctx context.Context, records []entity.CourseRecord) ([]entity.SatisfactionResult, error)
}

type satisfactionUsecase struct {
	classifier service.Classifier
	observer   PredictionObserver
}

// NewSatisfactionUsecase creates a new satisfaction usecase. observer may be nil.
func NewSatisfactionUsecase(classifier service.Classifier, observer PredictionObserver) SatisfactionUsecase {
	return &satisfactionUsecase{
		classifier: classifier,
		observer:   observer,
	}
}

func (u *satisfactionUsecase) Predict(ctx context.Context, records []entity.CourseRecord) ([]entity.SatisfactionResult, error) {
	results := make([]entity.SatisfactionResult, 0, len(records))

	for _, record := range records {
		if !record.HasRating() {
			return nil, validationError(ErrRatingNotProvided,
				"Rating not provided for course %s", record.DisplayName())
		}

		rating, err := record.RatingValue()
		if err != nil {
			return nil, internalError(err)
		}

		class, err := u.classifier.Classify(ctx, rating)
		if err != nil {
			return nil, internalError(fmt.Errorf("%w: rating %v: %w", ErrClassification, rating, err))
		}

		level, known := entity.MapOutput(class)
		if u.observer != nil {
			u.observer.ObservePrediction(level.String())
		}

		results = append(results, entity.NewSatisfactionResult(record, level, known))
	}

	return results, nil
}
