package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/awaissaddiqui/Flask-Server/internal/domain/entity"
)

// ErrNoData is returned when the request body carries nothing usable
var ErrNoData = errors.New("no data provided")

// DecodeCourseRecords parses a prediction request body.
// An absent, unparsable or empty value (null, false, 0, "", {}) yields ErrNoData.
// An explicit empty array is valid and yields zero records.
// Any other non-array body, or a non-object element, is a shape error.
func DecodeCourseRecords(body []byte) ([]entity.CourseRecord, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNoData
	}

	var probe interface{}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, ErrNoData
	}
	if isEmptyValue(probe) {
		return nil, ErrNoData
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("request body must be an array of course records: %w", err)
	}

	records := make([]entity.CourseRecord, len(items))
	for i, item := range items {
		if len(item) == 0 || item[0] != '{' {
			return nil, fmt.Errorf("course record %d is not an object: %s", i, item)
		}
		if err := json.Unmarshal(item, &records[i]); err != nil {
			return nil, fmt.Errorf("course record %d: %w", i, err)
		}
	}

	return records, nil
}

func isEmptyValue(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == ""
	case map[string]interface{}:
		return len(val) == 0
	default:
		return false
	}
}
