package domain

import (
	"encoding/json"
	"testing"
)

func TestSavedSetToggle(t *testing.T) {
	s := make(SavedSet)

	if !s.Toggle("a") {
		t.Error("first toggle should add")
	}
	if !s.Has("a") {
		t.Error("member missing after add")
	}
	if s.Toggle("a") {
		t.Error("second toggle should remove")
	}
	if s.Has("a") {
		t.Error("member present after remove")
	}
}

func TestSavedSetJSON(t *testing.T) {
	s := SavedSet{"b": {}, "a": {}, "c": {}}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["a","b","c"]` {
		t.Errorf("encoded = %s, want a sorted array", data)
	}

	var back SavedSet
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 3 || !back.Has("b") {
		t.Errorf("round trip = %v", back.IDs())
	}
}
