package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

var jsonNull = []byte("null")

// ErrRatingNotNumeric is returned when a rating is present but not a JSON number
var ErrRatingNotNumeric = errors.New("rating is not a number")

// CourseRecord is one course in a prediction request.
// CourseName and ReviewCount are opaque and echoed back untouched.
type CourseRecord struct {
	CourseName  json.RawMessage `json:"course_name"`
	Rating      json.RawMessage `json:"rating"`
	ReviewCount json.RawMessage `json:"review_count"`
}

// HasRating reports whether the record carries a non-null rating
func (r CourseRecord) HasRating() bool {
	return len(r.Rating) > 0 && string(r.Rating) != string(jsonNull)
}

// RatingValue decodes the rating as a float64
func (r CourseRecord) RatingValue() (float64, error) {
	var rating float64
	if err := json.Unmarshal(r.Rating, &rating); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrRatingNotNumeric, r.Rating)
	}
	return rating, nil
}

// DisplayName renders the course name for messages: strings unquoted,
// anything else as its JSON text, and "null" when absent or null.
func (r CourseRecord) DisplayName() string {
	if len(r.CourseName) == 0 || string(r.CourseName) == string(jsonNull) {
		return string(jsonNull)
	}
	var name string
	if err := json.Unmarshal(r.CourseName, &name); err == nil {
		return name
	}
	return string(r.CourseName)
}

// SatisfactionResult is one course in a prediction response
type SatisfactionResult struct {
	CourseName        json.RawMessage    `json:"course_name"`
	Rating            json.RawMessage    `json:"rating"`
	SatisfactionLevel *SatisfactionLevel `json:"satisfaction_level"`
	ReviewCount       json.RawMessage    `json:"review_count"`
}

// NewSatisfactionResult echoes the record and attaches the level.
// When known is false the level serialises as null.
func NewSatisfactionResult(record CourseRecord, level SatisfactionLevel, known bool) SatisfactionResult {
	result := SatisfactionResult{
		CourseName:  record.CourseName,
		Rating:      record.Rating,
		ReviewCount: record.ReviewCount,
	}
	if known {
		result.SatisfactionLevel = &level
	}
	return result
}

// Level returns the label, or "" when the class was unmapped
func (r SatisfactionResult) Level() string {
	if r.SatisfactionLevel == nil {
		return ""
	}
	return r.SatisfactionLevel.String()
}
