package validation

import (
	"encoding/json"
	"testing"

	"github.com/oksasatya/users-api/internal/domain/entity"
)

func init() { Init() }

func TestStruct_RequiredFields(t *testing.T) {
	err := Struct(entity.CreateUser{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	details := ToDetails(err)
	if details["name"] != "is required" || details["email"] != "is required" {
		t.Fatalf("unexpected details: %v", details)
	}
	if got := Message(details); got != "email is required, name is required" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(entity.CreateUser{Name: "Ann", Email: "ann@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestToDetails_JSONErrors(t *testing.T) {
	var in entity.CreateUser
	err := json.Unmarshal([]byte(`{"name":"Ann","email":"a@b.c","age":"x"}`), &in)
	if got := ToDetails(err)["age"]; got != "must be an integer" {
		t.Fatalf("unexpected age detail: %q", got)
	}

	err = json.Unmarshal([]byte(`{"name":`), &in)
	if got := ToDetails(err)["payload"]; got == "" {
		t.Fatalf("expected payload detail for %v", err)
	}
}
