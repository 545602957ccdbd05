package graphql

import (
	"strings"
	"testing"
)

func TestGenerateOperation_Query(t *testing.T) {
	schema := testSchema(t)
	document, err := GenerateOperation("contactProfileList", Query, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := strings.Join([]string{
		"query contactProfileList($email: String, $placeUuid: String!) {",
		"\tcontactProfileList(email: $email, placeUuid: $placeUuid) {",
		"\t\ttotal",
		"\t\tcontactProfileList {",
		"\t\t\tcontactUuid",
		"\t\t\temail",
		"\t\t\tfirstName",
		"\t\t\tplace {",
		"\t\t\t\tplaceUuid",
		"\t\t\t\tregion",
		"\t\t\t}",
		"\t\t}",
		"\t}",
		"}",
	}, "\n")
	if document != expected {
		t.Fatalf("unexpected document:\n%s\nexpected:\n%s", document, expected)
	}
}

func TestGenerateOperation_Mutation(t *testing.T) {
	schema := testSchema(t)
	document, err := GenerateOperation("insertUpdateContactProfile", Mutation, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := strings.Join([]string{
		"mutation insertUpdateContactProfile($email: String!, $data: JSON) {",
		"\tinsertUpdateContactProfile(email: $email, data: $data) {",
		"\t\tcontactProfile {",
		"\t\t\tcontactUuid",
		"\t\t\temail",
		"\t\t\tfirstName",
		"\t\t\tplace {",
		"\t\t\t\tplaceUuid",
		"\t\t\t\tregion",
		"\t\t\t}",
		"\t\t}",
		"\t}",
		"}",
	}, "\n")
	if document != expected {
		t.Fatalf("unexpected document:\n%s\nexpected:\n%s", document, expected)
	}
}

func TestGenerateOperation_SkipsArgumentSubfields(t *testing.T) {
	schema := testSchema(t)
	document, err := GenerateOperation("contactProfileList", Query, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// requests takes arguments, owner sits past the depth budget, and meta
	// only has argument-taking children, so none may be selected.
	for _, absent := range []string{"requests", "owner", "meta"} {
		if strings.Contains(document, absent) {
			t.Fatalf("expected no %s selection in document:\n%s", absent, document)
		}
	}
}

func TestGenerateOperation_UnknownOperation(t *testing.T) {
	schema := testSchema(t)
	_, err := GenerateOperation("placeList", Query, schema)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "operation placeList is not defined on Query") {
		t.Fatalf("unexpected error: %v", err)
	}
}
