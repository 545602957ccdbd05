package helpers

import (
	"reflect"
	"strings"
	"testing"
)

func TestTraverse(t *testing.T) {
	tests := []struct {
		Title         string
		Run           func() (any, error)
		Object        any
		Keys          []any
		Fallback      any
		Expected      any
		ExpectedError string
	}{
		{
			Title: "slice: OK",
			Run: func() (any, error) {
				return TraverseWithError([]int{1, 2, 3}, []any{1}, 0)
			},
			Expected: 2,
		},
		{
			Title: "slice: invalid key",
			Run: func() (any, error) {
				return TraverseWithError([]int{1, 2, 3}, []any{"x"}, 0)
			},
			Expected:      0,
			ExpectedError: "expected int key",
		},
		{
			Title: "slice: out of range",
			Run: func() (any, error) {
				return TraverseWithError([]int{1, 2, 3}, []any{4}, 5)
			},
			Expected:      5,
			ExpectedError: "index 4 out of range 2",
		},
		{
			Title: "slice: invalid result type",
			Run: func() (any, error) {
				return TraverseWithError([]int{1, 2, 3}, []any{1}, "?")
			},
			Expected:      "?",
			ExpectedError: "could not type assert final value int into string",
		},
		{
			Title: "map: OK",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{"a": 1}, []any{"a"}, 1)
			},
			Expected: 1,
		},
		{
			Title: "map: invalid key",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{"a": 1}, []any{1}, 1)
			},
			Expected:      1,
			ExpectedError: "expected string key",
		},
		{
			Title: "map: key not found",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{"a": 1}, []any{"b"}, 2)
			},
			Expected:      2,
			ExpectedError: "key b not found",
		},
		{
			Title: "map: invalid result type",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{"a": 1}, []any{"a"}, "?")
			},
			Expected:      "?",
			ExpectedError: "could not type assert final value int into string",
		},
		{
			Title: "slice_map: OK",
			Run: func() (any, error) {
				return TraverseWithError([]any{nil, map[string]any{"a": 1}}, []any{1, "a"}, 1)
			},
			Expected: 1,
		},
		{
			Title: "slice_map: invalid object to traverse",
			Run: func() (any, error) {
				return TraverseWithError([]any{1, map[string]any{"a": 1}}, []any{0, "a"}, 1)
			},
			Expected:      1,
			ExpectedError: "cannot traverse object of type int",
		},
		{
			Title: "map_slice: OK",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{"a": []any{1, 2, 4}, "b": "c"}, []any{"a", 1}, 1)
			},
			Expected: 2,
		},
		{
			Title: "deep: OK",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{
					"a": map[string]any{
						"b": []any{
							0,
							0,
							map[string]any{
								"c": []any{1, 2, 3, 4, 5},
							},
						},
					},
				}, []any{"a", "b", 2, "c", 3}, 0)
			},
			Expected: 4,
		},
		{
			Title: "deep: index error",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{
					"a": map[string]any{
						"b": []any{
							0,
							0,
							map[string]any{
								"c": []any{1, 2, 3, 4, 5},
							},
						},
					},
				}, []any{"a", "b", 5, "c", 3}, 0)
			},
			Expected:      0,
			ExpectedError: "index 5 out of range 2",
		},
		{
			Title: "deep: key error",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{
					"a": map[string]any{
						"b": []any{
							0,
							0,
							map[string]any{
								"c": []any{1, 2, 3, 4, 5},
							},
						},
					},
				}, []any{"a", "b", 2, "d", 3}, 0)
			},
			Expected:      0,
			ExpectedError: "key d not found",
		},
		{
			Title: "deep: traverse error",
			Run: func() (any, error) {
				return TraverseWithError(map[string]any{
					"a": map[string]any{
						"b": []any{
							0,
							nil,
							map[string]any{
								"c": []any{1, 2, 3, 4, 5},
							},
						},
					},
				}, []any{"a", "b", 1, "d", 3}, 4)
			},
			Expected:      4,
			ExpectedError: "cannot traverse object of type <nil>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			res, err := tt.Run()
			if tt.ExpectedError == "" && err != nil {
				t.Fatalf("no error expected, but got one: %v", err)
			}
			if tt.ExpectedError != "" {
				if err == nil {
					t.Fatalf("expected '%s' in error, but got no error", tt.ExpectedError)
				} else if !strings.Contains(err.Error(), tt.ExpectedError) {
					t.Fatalf("expected '%s' in error, but got: %v", tt.ExpectedError, err)
				}
			}
			if res != tt.Expected {
				t.Fatalf("expected %v (%T), got %v (%T)", tt.Expected, tt.Expected, res, res)
			}
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		Title    string
		In       string
		Expected string
	}{
		{Title: "empty", In: "", Expected: ""},
		{Title: "already snake", In: "place_uuid", Expected: "place_uuid"},
		{Title: "simple camel", In: "placeUuid", Expected: "place_uuid"},
		{Title: "pascal", In: "ContactProfile", Expected: "contact_profile"},
		{Title: "html suffix", In: "bodyHtml", Expected: "body_html"},
		{Title: "consecutive capitals", In: "googleAPIKey", Expected: "google_api_key"},
		{Title: "leading capital run", In: "UUID", Expected: "uuid"},
		{Title: "single word", In: "weight", Expected: "weight"},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			if res := SnakeCase(tt.In); res != tt.Expected {
				t.Fatalf("expected %q, got %q", tt.Expected, res)
			}
		})
	}
}

func TestDecamelizeKeys(t *testing.T) {
	in := map[string]any{
		"contactUuid": "c1",
		"firstName":   "Ann",
		"data": map[string]any{
			"salesRep": "Team",
		},
		"questionGroups": []any{
			map[string]any{"questionUuid": "q1", "weight": 2.0},
		},
		"plain": 1,
	}
	expected := map[string]any{
		"contact_uuid": "c1",
		"first_name":   "Ann",
		"data": map[string]any{
			"sales_rep": "Team",
		},
		"question_groups": []any{
			map[string]any{"question_uuid": "q1", "weight": 2.0},
		},
		"plain": 1,
	}
	res := DecamelizeMap(in)
	if !reflect.DeepEqual(res, expected) {
		t.Fatalf("expected %v, got %v", expected, res)
	}
	// The input map must not be mutated.
	if _, found := in["contactUuid"]; !found {
		t.Fatalf("input map was mutated: %v", in)
	}
}

func TestCompareStrings(t *testing.T) {
	tests := []struct {
		Title    string
		S1       string
		S2       string
		Expected bool
	}{
		{Title: "equal", S1: "Main Street Cafe", S2: "Main Street Cafe", Expected: true},
		{Title: "case insensitive", S1: "MAIN street cafe", S2: "main Street CAFE", Expected: true},
		{Title: "accent insensitive", S1: "Café Décor", S2: "Cafe Decor", Expected: true},
		{Title: "different", S1: "Main Street Cafe", S2: "Side Street Cafe", Expected: false},
		{Title: "both empty", S1: "", S2: "", Expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			res, err := CompareStrings(tt.S1, tt.S2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res != tt.Expected {
				t.Fatalf("expected %v comparing %q and %q", tt.Expected, tt.S1, tt.S2)
			}
		})
	}
}

func TestCompareStringSets(t *testing.T) {
	tests := []struct {
		Title    string
		S1       []string
		S2       []string
		Expected bool
	}{
		{Title: "equal ordered", S1: []string{"cafe", "bakery"}, S2: []string{"cafe", "bakery"}, Expected: true},
		{Title: "equal unordered", S1: []string{"bakery", "cafe"}, S2: []string{"cafe", "bakery"}, Expected: true},
		{Title: "case insensitive", S1: []string{"Bakery", "CAFE"}, S2: []string{"cafe", "bakery"}, Expected: true},
		{Title: "missing element", S1: []string{"cafe"}, S2: []string{"cafe", "bakery"}, Expected: false},
		{Title: "extra element", S1: []string{"cafe", "bakery", "bar"}, S2: []string{"cafe", "bakery"}, Expected: false},
		{Title: "both empty", S1: nil, S2: []string{}, Expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			res, err := CompareStringSets(tt.S1, tt.S2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res != tt.Expected {
				t.Fatalf("expected %v comparing %v and %v", tt.Expected, tt.S1, tt.S2)
			}
		})
	}
}
