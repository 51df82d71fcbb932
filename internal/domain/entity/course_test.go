package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, body string) CourseRecord {
	t.Helper()
	var record CourseRecord
	require.NoError(t, json.Unmarshal([]byte(body), &record))
	return record
}

func TestCourseRecord_HasRating(t *testing.T) {
	assert.True(t, decodeRecord(t, `{"rating": 4}`).HasRating())
	assert.True(t, decodeRecord(t, `{"rating": 0}`).HasRating())
	assert.False(t, decodeRecord(t, `{"course_name": "CS101"}`).HasRating())
	assert.False(t, decodeRecord(t, `{"rating": null}`).HasRating())
}

func TestCourseRecord_RatingValue(t *testing.T) {
	t.Run("integer rating", func(t *testing.T) {
		rating, err := decodeRecord(t, `{"rating": 4}`).RatingValue()

		assert.NoError(t, err)
		assert.Equal(t, 4.0, rating)
	})

	t.Run("fractional rating", func(t *testing.T) {
		rating, err := decodeRecord(t, `{"rating": 3.75}`).RatingValue()

		assert.NoError(t, err)
		assert.Equal(t, 3.75, rating)
	})

	t.Run("string rating is rejected", func(t *testing.T) {
		_, err := decodeRecord(t, `{"rating": "four"}`).RatingValue()

		assert.ErrorIs(t, err, ErrRatingNotNumeric)
	})

	t.Run("boolean rating is rejected", func(t *testing.T) {
		_, err := decodeRecord(t, `{"rating": true}`).RatingValue()

		assert.ErrorIs(t, err, ErrRatingNotNumeric)
	})
}

func TestCourseRecord_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string name", body: `{"course_name": "CS101"}`, want: "CS101"},
		{name: "absent name", body: `{}`, want: "null"},
		{name: "null name", body: `{"course_name": null}`, want: "null"},
		{name: "numeric name", body: `{"course_name": 101}`, want: "101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeRecord(t, tt.body).DisplayName())
		})
	}
}

func TestNewSatisfactionResult(t *testing.T) {
	t.Run("known level echoes the record", func(t *testing.T) {
		record := decodeRecord(t, `{"course_name": "CS101", "rating": 4}`)

		result := NewSatisfactionResult(record, SatisfactionSatisfied, true)
		body, err := json.Marshal(result)

		require.NoError(t, err)
		assert.JSONEq(t,
			`{"course_name":"CS101","rating":4,"satisfaction_level":"Satisfied","review_count":null}`,
			string(body))
		assert.Equal(t, "Satisfied", result.Level())
	})

	t.Run("unknown level serialises as null", func(t *testing.T) {
		record := decodeRecord(t, `{"course_name": "CS102", "rating": 9.5, "review_count": 12}`)

		result := NewSatisfactionResult(record, "", false)
		body, err := json.Marshal(result)

		require.NoError(t, err)
		assert.JSONEq(t,
			`{"course_name":"CS102","rating":9.5,"satisfaction_level":null,"review_count":12}`,
			string(body))
		assert.Empty(t, result.Level())
	})

	t.Run("opaque fields are passed through", func(t *testing.T) {
		record := decodeRecord(t, `{"course_name": {"code": "CS"}, "rating": 1, "review_count": "many"}`)

		body, err := json.Marshal(NewSatisfactionResult(record, SatisfactionNeutral, true))

		require.NoError(t, err)
		assert.JSONEq(t,
			`{"course_name":{"code":"CS"},"rating":1,"satisfaction_level":"Neutral","review_count":"many"}`,
			string(body))
	})
}
