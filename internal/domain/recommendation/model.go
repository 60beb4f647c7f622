package recommendation

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
)

// Type classifies how the recommended product relates to the source product
type Type string

// Recommendation types
const (
	TypeDefault            Type = "default"
	TypeCrossSell          Type = "cross-sell"
	TypeUpSell             Type = "up-sell"
	TypeAccessory          Type = "accessory"
	TypeFrequentlyTogether Type = "frequently-together"
)

var types = []Type{
	TypeDefault,
	TypeCrossSell,
	TypeUpSell,
	TypeAccessory,
	TypeFrequentlyTogether,
}

// Types returns every recognised recommendation type in declaration order
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Valid reports whether t is a recognised recommendation type
func (t Type) Valid() bool {
	for _, known := range types {
		if t == known {
			return true
		}
	}
	return false
}

// ParseType converts a raw string into a Type
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", errors.ValidationError(
			fmt.Sprintf("Invalid recommendation type '%s'", s),
			map[string]interface{}{"field": "type", "value": s, "allowed": typeNames()},
		)
	}
	return t, nil
}

func typeNames() []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// NotFoundError reports that no recommendation with the given id exists
func NotFoundError(id int64) *errors.AppError {
	return errors.New(
		errors.ErrCodeNotFound,
		fmt.Sprintf("Recommendation with id '%d' could not be found.", id),
		http.StatusNotFound,
	).WithDetails(map[string]interface{}{"id": id})
}

// Recommendation links a product to a recommended product
type Recommendation struct {
	ID             int64 `json:"id"`
	PID            int64 `json:"pid"`
	RecommendedPID int64 `json:"recommended_pid"`
	Type           Type  `json:"type" validate:"required,oneof=default cross-sell up-sell accessory frequently-together"`
	Liked          bool  `json:"liked"`
}

// New returns an unsaved recommendation with the default type
func New(pid, recommendedPID int64) *Recommendation {
	return &Recommendation{
		PID:            pid,
		RecommendedPID: recommendedPID,
		Type:           TypeDefault,
	}
}

// String renders the recommendation for logs
func (r *Recommendation) String() string {
	id := "None"
	if r.ID != 0 {
		id = fmt.Sprintf("%d", r.ID)
	}
	return fmt.Sprintf("<Recommendation id=[%s] (%d - %d)>", id, r.PID, r.RecommendedPID)
}

// Filter contains recommendation filtering options. Nil fields do not filter.
type Filter struct {
	PID   *int64
	Type  *Type
	Liked *bool
}

// IsEmpty reports whether the filter matches every recommendation
func (f Filter) IsEmpty() bool {
	return f.PID == nil && f.Type == nil && f.Liked == nil
}

// Matches reports whether rec satisfies every predicate set on the filter
func (f Filter) Matches(rec *Recommendation) bool {
	if f.PID != nil && rec.PID != *f.PID {
		return false
	}
	if f.Type != nil && rec.Type != *f.Type {
		return false
	}
	if f.Liked != nil && rec.Liked != *f.Liked {
		return false
	}
	return true
}

// String renders the filter for logs
func (f Filter) String() string {
	var parts []string
	if f.PID != nil {
		parts = append(parts, fmt.Sprintf("pid=%d", *f.PID))
	}
	if f.Type != nil {
		parts = append(parts, fmt.Sprintf("type=%s", *f.Type))
	}
	if f.Liked != nil {
		parts = append(parts, fmt.Sprintf("liked=%t", *f.Liked))
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, ",")
}
