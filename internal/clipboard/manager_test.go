package clipboard

import (
	"errors"
	"testing"
)

func TestInternalClipboard(t *testing.T) {
	m := NewManager(false)
	if m.UsingSystem() {
		t.Fatal("system clipboard should be off")
	}
	if err := m.Copy("42"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	got, err := m.Text()
	if err != nil || got != "42" {
		t.Errorf("Text() = %q, %v", got, err)
	}
}

func TestSystemClipboard(t *testing.T) {
	var system string
	m := &Manager{
		useSystem: true,
		writeAll:  func(s string) error { system = s; return nil },
		readAll:   func() (string, error) { return system, nil },
	}
	if err := m.Copy("3.14"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if system != "3.14" {
		t.Errorf("system clipboard = %q", system)
	}
	system = "pasted elsewhere"
	if got, _ := m.Text(); got != "pasted elsewhere" {
		t.Errorf("Text() = %q, want system contents", got)
	}
}

func TestSystemClipboardFailureKeepsInternalCopy(t *testing.T) {
	boom := errors.New("no xclip")
	m := &Manager{
		useSystem: true,
		writeAll:  func(string) error { return boom },
		readAll:   func() (string, error) { return "", boom },
	}
	err := m.Copy("7")
	if !errors.Is(err, boom) {
		t.Fatalf("Copy error = %v, want wrapped %v", err, boom)
	}
	got, err := m.Text()
	if got != "7" || !errors.Is(err, boom) {
		t.Errorf("Text() = %q, %v; want internal copy and read error", got, err)
	}
}
