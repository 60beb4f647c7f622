package recommendation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
	"github.com/pratik-mahalle/recommendations/internal/pkg/validator"
)

// ListQuery holds the parsed list parameters. Nil fields were not supplied.
type ListQuery struct {
	Type   *Type
	Liked  *bool
	PID    *int64
	Amount *int
}

// ParseListQuery reads type, liked, pid and amount from a query string.
// Empty values are treated as absent.
func ParseListQuery(values url.Values) (ListQuery, error) {
	var q ListQuery

	if raw := values.Get("type"); raw != "" {
		t, err := ParseType(raw)
		if err != nil {
			return ListQuery{}, err
		}
		q.Type = &t
	}

	if raw := values.Get("liked"); raw != "" {
		liked, err := ParseLiked(raw)
		if err != nil {
			return ListQuery{}, err
		}
		q.Liked = &liked
	}

	if raw := values.Get("pid"); raw != "" {
		pid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ListQuery{}, queryError("pid", raw, fmt.Sprintf("Invalid pid '%s': must be an integer", raw))
		}
		q.PID = &pid
	}

	if raw := values.Get("amount"); raw != "" {
		amount, err := strconv.Atoi(raw)
		if err != nil || validator.ValidateVar(amount, "gte=0") != nil {
			return ListQuery{}, queryError("amount", raw, fmt.Sprintf("Invalid amount '%s': must be a non-negative integer", raw))
		}
		q.Amount = &amount
	}

	return q, nil
}

// ParseLiked accepts the usual boolean spellings, case-insensitively
func ParseLiked(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "1", "yes":
		return true, nil
	case "false", "f", "0", "no":
		return false, nil
	}
	return false, queryError("liked", raw, fmt.Sprintf("Invalid liked value '%s': must be true or false", raw))
}

// HasAttributes reports whether the storage-side predicates (type, liked) are set
func (q ListQuery) HasAttributes() bool {
	return q.Type != nil || q.Liked != nil
}

// Narrow keeps the records matching PID and truncates to Amount. Records keep
// their relative order; an Amount larger than the input returns everything.
func (q ListQuery) Narrow(recs []*Recommendation) []*Recommendation {
	out := make([]*Recommendation, 0, len(recs))
	for _, rec := range recs {
		if q.PID != nil && rec.PID != *q.PID {
			continue
		}
		out = append(out, rec)
	}
	if q.Amount != nil && *q.Amount < len(out) {
		out = out[:*q.Amount]
	}
	return out
}

func queryError(field, value, msg string) *errors.AppError {
	return errors.ValidationError(msg, map[string]interface{}{"field": field, "value": value})
}
