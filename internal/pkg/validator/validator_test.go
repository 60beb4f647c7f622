package validator

import "testing"

type sample struct {
	Kind  string `json:"kind" validate:"required,oneof=a b"`
	Count int    `json:"count" validate:"gte=0"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     sample
		wantField string
		wantTag   string
	}{
		{name: "valid", input: sample{Kind: "a", Count: 1}},
		{name: "missing kind", input: sample{Count: 1}, wantField: "kind", wantTag: "required"},
		{name: "bad kind", input: sample{Kind: "c"}, wantField: "kind", wantTag: "oneof"},
		{name: "negative count", input: sample{Kind: "b", Count: -1}, wantField: "count", wantTag: "gte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(tt.input)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField || errs[0].Tag != tt.wantTag {
				t.Errorf("Validate() = %+v, want field %s tag %s", errs[0], tt.wantField, tt.wantTag)
			}
			if errs[0].Message == "" {
				t.Error("Validate() returned empty message")
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := ValidateVar("up-sell", "oneof=default up-sell"); err != nil {
		t.Errorf("ValidateVar() unexpected error: %v", err)
	}
	if err := ValidateVar("mixed", "oneof=default up-sell"); err == nil {
		t.Error("ValidateVar() expected error for value outside the set")
	}
}
