package recommendation

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
	"github.com/pratik-mahalle/recommendations/internal/pkg/validator"
)

const invalidPrefix = "Invalid Recommendation: "

// Serialize returns the recommendation as a plain map. The id is nil until
// storage has assigned one.
func (r *Recommendation) Serialize() map[string]interface{} {
	var id interface{}
	if r.ID != 0 {
		id = r.ID
	}
	return map[string]interface{}{
		"id":              id,
		"pid":             r.PID,
		"recommended_pid": r.RecommendedPID,
		"type":            string(r.Type),
		"liked":           r.Liked,
	}
}

// Deserialize populates pid, recommended_pid, type and liked from an untyped
// value, normally the result of decoding a JSON body into interface{}.
// The receiver is left untouched when an error is returned.
func (r *Recommendation) Deserialize(data interface{}) error {
	m, ok := data.(map[string]interface{})
	if !ok {
		return errors.ValidationError(
			invalidPrefix+"body of request contained bad or no data",
			map[string]interface{}{"expected": "object", "got": kindOf(data)},
		)
	}

	pid, err := intField(m, "pid")
	if err != nil {
		return err
	}
	recommendedPID, err := intField(m, "recommended_pid")
	if err != nil {
		return err
	}

	candidate := Recommendation{
		ID:             r.ID,
		PID:            pid,
		RecommendedPID: recommendedPID,
		Type:           TypeDefault,
	}

	if raw, present := m["type"]; present {
		s, ok := raw.(string)
		if !ok {
			return fieldError("type", raw, "type must be a string")
		}
		candidate.Type = Type(s)
	}

	if raw, present := m["liked"]; present {
		liked, ok := raw.(bool)
		if !ok {
			return fieldError("liked", raw, "liked must be a boolean")
		}
		candidate.Liked = liked
	}

	if errs := validator.Validate(candidate); len(errs) > 0 {
		return errors.ValidationError(invalidPrefix+errs[0].Message, errs)
	}

	*r = candidate
	return nil
}

// Merge applies a full or partial update. Keys present in data replace the
// current values; the result is validated exactly like Deserialize.
func (r *Recommendation) Merge(data interface{}) error {
	patch, ok := data.(map[string]interface{})
	if !ok {
		return r.Deserialize(data)
	}
	merged := r.Serialize()
	for k, v := range patch {
		if k == "id" {
			continue
		}
		merged[k] = v
	}
	return r.Deserialize(merged)
}

func intField(m map[string]interface{}, key string) (int64, error) {
	raw, present := m[key]
	if !present {
		return 0, errors.ValidationError(
			invalidPrefix+"missing "+key,
			map[string]interface{}{"field": key, "tag": "required"},
		)
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fieldError(key, raw, key+" must be an integer")
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fieldError(key, raw, key+" must be an integer")
		}
		return n, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fieldError(key, raw, key+" must be an integer")
	}
}

func fieldError(field string, value interface{}, msg string) *errors.AppError {
	return errors.ValidationError(invalidPrefix+msg, []validator.ValidationError{{
		Field:   field,
		Tag:     "type",
		Value:   fmt.Sprintf("%v", value),
		Message: msg,
	}})
}

func kindOf(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
