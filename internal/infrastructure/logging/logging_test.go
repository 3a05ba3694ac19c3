package logging

import "testing"

func TestNew(t *testing.T) {
	log, err := New(Config{Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log == nil {
		t.Fatal("expected logger")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewDefaultNeverNil(t *testing.T) {
	if NewDefault() == nil {
		t.Fatal("expected logger")
	}
	if NewDevelopment() == nil {
		t.Fatal("expected logger")
	}
}
