package ident

import (
	"strings"
	"testing"
	"time"
)

func TestNewHasKindPrefix(t *testing.T) {
	id := New("vertex")
	if !strings.HasPrefix(id, "vertex-") {
		t.Errorf("expected vertex- prefix, got %q", id)
	}
	if Kind(id) != "vertex" {
		t.Errorf("expected kind vertex, got %q", Kind(id))
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := New("feature")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	ts, err := Timestamp(New("op"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.Before(before) || ts.After(time.Now().Add(time.Second)) {
		t.Errorf("timestamp %v not near now", ts)
	}

	if _, err := Timestamp("garbage"); err == nil {
		t.Error("expected error for malformed id")
	}
	if _, err := Timestamp("kind-notaulid"); err == nil {
		t.Error("expected error for bad ulid component")
	}
}

func TestOlder(t *testing.T) {
	a := New("vertex")
	time.Sleep(2 * time.Millisecond)
	b := New("vertex")
	if !Older(a, b) {
		t.Errorf("expected %q older than %q", a, b)
	}
	if Older(b, a) {
		t.Errorf("expected %q not older than %q", b, a)
	}
	// self comparison is stable
	if Older(a, a) {
		t.Error("expected id not older than itself")
	}
}
