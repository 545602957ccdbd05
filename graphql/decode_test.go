package graphql

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	type profile struct {
		ContactUuid string `json:"contactUuid"`
		Email       string `json:"email"`
	}
	result, err := Decode[profile](map[string]any{
		"contactUuid": "c-1",
		"email":       "a@x.com",
		"updatedAt":   "2024-01-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ContactUuid != "c-1" || result.Email != "a@x.com" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		Title         string
		Run           func() (any, error)
		ExpectedError string
	}{
		{
			Title: "Unmarshallable value",
			Run: func() (any, error) {
				return Decode[any](make(chan int))
			},
			ExpectedError: "error re-marshalling response value",
		},
		{
			Title: "Shape mismatch",
			Run: func() (any, error) {
				return Decode[struct{ Total int }]([]any{1, 2})
			},
			ExpectedError: "error decoding response value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			_, err := tt.Run()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.ExpectedError) {
				t.Fatalf("expected '%s' in error, but got: %v", tt.ExpectedError, err)
			}
		})
	}
}
