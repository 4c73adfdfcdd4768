package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSite_IsValid(t *testing.T) {
	if _, err := LoadSite(""); err != nil {
		t.Fatalf("default site should validate: %v", err)
	}
}

func TestDefaultSite_Facts(t *testing.T) {
	site := DefaultSite()

	if site.Name != "MM Counselling" {
		t.Fatalf("unexpected name: %q", site.Name)
	}
	if site.Location.City != "Portsmouth" || site.Location.Area != "Southsea" {
		t.Fatalf("unexpected location: %+v", site.Location)
	}
	if len(site.Specialisms) != 4 {
		t.Fatalf("expected 4 specialisms, got %d", len(site.Specialisms))
	}
	if site.Fees.Initial != 50 || site.Fees.Standard != 55 || site.Fees.Concession != 45 {
		t.Fatalf("unexpected fees: %+v", site.Fees)
	}
}

func TestLoadSite_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	yaml := `
name: Harbour Counselling
contact:
  email: hello@harbour.example
  phone: "01234 567890"
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	site, err := LoadSite(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if site.Name != "Harbour Counselling" {
		t.Fatalf("override not applied: %q", site.Name)
	}
	if site.Contact.Email != "hello@harbour.example" {
		t.Fatalf("contact override not applied: %q", site.Contact.Email)
	}
	// Unset fields keep their defaults.
	if site.Location.City != "Portsmouth" {
		t.Fatalf("default location lost: %q", site.Location.City)
	}
}

func TestLoadSite_InvalidEmailRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	yaml := `
contact:
  email: not-an-email
  phone: "01234 567890"
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadSite(path)
	if err == nil || !strings.Contains(err.Error(), "validate site config") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoadSite_MissingFile(t *testing.T) {
	if _, err := LoadSite(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
