package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodeRequirement(t *testing.T) {
	t.Run("core shape", func(t *testing.T) {
		doc := []byte(`{
			"id": "cs-core",
			"name": "CS Core",
			"groups": [["CS1110","CS1112"],["CS2110"]]
		}`)

		req, err := DecodeRequirement(doc)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Kind != RequirementCore {
			t.Errorf("Kind = %q, want core", req.Kind)
		}
		want := [][]string{{"CS1110", "CS1112"}, {"CS2110"}}
		if !reflect.DeepEqual(req.Groups, want) {
			t.Errorf("Groups = %v, want %v", req.Groups, want)
		}
		if req.Courses != nil || req.Number != 0 {
			t.Error("core requirement must not carry the elective shape")
		}
	})

	t.Run("elective shape", func(t *testing.T) {
		doc := []byte(`{
			"id": "cs-electives",
			"name": "CS Electives",
			"tag": "electives",
			"courses": ["CS4410","CS4780"],
			"number": 2
		}`)

		req, err := DecodeRequirement(doc)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Kind != RequirementElective {
			t.Errorf("Kind = %q, want elective", req.Kind)
		}
		if req.Number != 2 || len(req.Courses) != 2 {
			t.Errorf("elective fields = %v / %d", req.Courses, req.Number)
		}
		if req.Tag != "electives" {
			t.Errorf("Tag = %q, want electives", req.Tag)
		}
		if req.Groups != nil {
			t.Error("elective requirement must not carry groups")
		}
	})

	t.Run("both shapes decode as core", func(t *testing.T) {
		doc := []byte(`{
			"id": "odd",
			"groups": [["CS1110"]],
			"courses": ["CS4410"],
			"number": 1
		}`)

		req, err := DecodeRequirement(doc)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Kind != RequirementCore {
			t.Errorf("Kind = %q, groups win when both shapes are present", req.Kind)
		}
	})

	t.Run("neither shape is malformed", func(t *testing.T) {
		_, err := DecodeRequirement([]byte(`{"id":"empty","name":"Empty"}`))
		if !errors.Is(err, ErrMalformedRequirement) {
			t.Errorf("err = %v, want ErrMalformedRequirement", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := DecodeRequirement([]byte(`{`)); err == nil {
			t.Error("invalid JSON must error")
		}
	})
}
