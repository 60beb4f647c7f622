package recommendation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
)

func TestRecommendation_Serialize(t *testing.T) {
	rec := &Recommendation{ID: 4, PID: 100, RecommendedPID: 200, Type: TypeUpSell, Liked: true}

	got := rec.Serialize()

	if got["id"] != int64(4) {
		t.Errorf("id = %v", got["id"])
	}
	if got["pid"] != int64(100) || got["recommended_pid"] != int64(200) {
		t.Errorf("pids = %v, %v", got["pid"], got["recommended_pid"])
	}
	if got["type"] != "up-sell" {
		t.Errorf("type = %v", got["type"])
	}
	if got["liked"] != true {
		t.Errorf("liked = %v", got["liked"])
	}
}

func TestRecommendation_SerializeUnsavedHasNilID(t *testing.T) {
	got := New(10, 20).Serialize()
	if got["id"] != nil {
		t.Errorf("id = %v, want nil", got["id"])
	}
	if got["type"] != "default" || got["liked"] != false {
		t.Errorf("defaults = %v / %v", got["type"], got["liked"])
	}
}

func TestRecommendation_String(t *testing.T) {
	if got := New(10, 20).String(); got != "<Recommendation id=[None] (10 - 20)>" {
		t.Errorf("String() = %q", got)
	}
	rec := &Recommendation{ID: 3, PID: 1, RecommendedPID: 2}
	if got := rec.String(); got != "<Recommendation id=[3] (1 - 2)>" {
		t.Errorf("String() = %q", got)
	}
}

func TestRecommendation_Deserialize(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      Recommendation
		wantErr   bool
		errSubstr string
	}{
		{
			name: "full body",
			body: `{"pid": 100, "recommended_pid": 200, "type": "cross-sell", "liked": true}`,
			want: Recommendation{PID: 100, RecommendedPID: 200, Type: TypeCrossSell, Liked: true},
		},
		{
			name: "type and liked default",
			body: `{"pid": 1, "recommended_pid": 2}`,
			want: Recommendation{PID: 1, RecommendedPID: 2, Type: TypeDefault},
		},
		{
			name: "id in body is ignored",
			body: `{"id": 99, "pid": 0, "recommended_pid": 0, "type": "accessory"}`,
			want: Recommendation{Type: TypeAccessory},
		},
		{
			name:      "empty object misses pid",
			body:      `{}`,
			wantErr:   true,
			errSubstr: "missing pid",
		},
		{
			name:      "missing recommended_pid",
			body:      `{"pid": 1}`,
			wantErr:   true,
			errSubstr: "missing recommended_pid",
		},
		{
			name:      "array is not a mapping",
			body:      `[]`,
			wantErr:   true,
			errSubstr: "bad or no data",
		},
		{
			name:      "null body",
			body:      `null`,
			wantErr:   true,
			errSubstr: "bad or no data",
		},
		{
			name:      "unknown type",
			body:      `{"pid": 0, "recommended_pid": 0, "type": "not_a_valid_type"}`,
			wantErr:   true,
			errSubstr: "type must be one of",
		},
		{
			name:      "integer type code rejected",
			body:      `{"pid": 0, "recommended_pid": 0, "type": 0}`,
			wantErr:   true,
			errSubstr: "type must be a string",
		},
		{
			name:      "liked not bool",
			body:      `{"pid": 0, "recommended_pid": 0, "type": "default", "liked": "not_bool"}`,
			wantErr:   true,
			errSubstr: "liked must be a boolean",
		},
		{
			name:      "pid as string",
			body:      `{"pid": "5", "recommended_pid": 6}`,
			wantErr:   true,
			errSubstr: "pid must be an integer",
		},
		{
			name:      "fractional recommended_pid",
			body:      `{"pid": 5, "recommended_pid": 6.5}`,
			wantErr:   true,
			errSubstr: "recommended_pid must be an integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data interface{}
			if err := json.Unmarshal([]byte(tt.body), &data); err != nil {
				t.Fatalf("bad fixture: %v", err)
			}

			var rec Recommendation
			err := rec.Deserialize(data)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Deserialize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeValidation) {
					t.Errorf("Deserialize() error code should be validation, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("Deserialize() error = %q, want it to contain %q", err.Error(), tt.errSubstr)
				}
				if rec != (Recommendation{}) {
					t.Errorf("Deserialize() mutated receiver on error: %+v", rec)
				}
				return
			}
			if rec != tt.want {
				t.Errorf("Deserialize() = %+v, want %+v", rec, tt.want)
			}
		})
	}
}

func TestRecommendation_DeserializeRoundTrip(t *testing.T) {
	orig := &Recommendation{ID: 8, PID: 100, RecommendedPID: 200, Type: TypeFrequentlyTogether}

	var rec Recommendation
	if err := rec.Deserialize(orig.Serialize()); err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if rec.PID != orig.PID || rec.RecommendedPID != orig.RecommendedPID || rec.Type != orig.Type {
		t.Errorf("round trip = %+v, want %+v", rec, orig)
	}
	if rec.ID != 0 {
		t.Errorf("Deserialize() should not take the id from data, got %d", rec.ID)
	}
}

func TestRecommendation_Merge(t *testing.T) {
	base := Recommendation{ID: 5, PID: 1, RecommendedPID: 2, Type: TypeDefault}

	tests := []struct {
		name    string
		patch   interface{}
		want    Recommendation
		wantErr bool
	}{
		{
			name:  "partial keeps other fields",
			patch: map[string]interface{}{"recommended_pid": float64(9)},
			want:  Recommendation{ID: 5, PID: 1, RecommendedPID: 9, Type: TypeDefault},
		},
		{
			name:  "flip liked and type",
			patch: map[string]interface{}{"liked": true, "type": "up-sell"},
			want:  Recommendation{ID: 5, PID: 1, RecommendedPID: 2, Type: TypeUpSell, Liked: true},
		},
		{
			name:  "id in patch is ignored",
			patch: map[string]interface{}{"id": float64(77)},
			want:  base,
		},
		{
			name:    "invalid type rejected",
			patch:   map[string]interface{}{"type": "mixed"},
			wantErr: true,
		},
		{
			name:    "non mapping rejected",
			patch:   "pid=3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := base
			err := rec.Merge(tt.patch)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Merge() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if rec != base {
					t.Errorf("Merge() mutated receiver on error: %+v", rec)
				}
				return
			}
			if rec != tt.want {
				t.Errorf("Merge() = %+v, want %+v", rec, tt.want)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(string(typ))
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %q, %v", typ, got, err)
		}
	}

	_, err := ParseType("mixed_recommendations")
	if err == nil {
		t.Fatal("ParseType() expected error")
	}
	if !strings.Contains(err.Error(), "mixed_recommendations") {
		t.Errorf("error should name the invalid value: %v", err)
	}
}
