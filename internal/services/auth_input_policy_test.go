package services

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "normalizes case and spaces", raw: " CARER@EXAMPLE.COM ", want: "carer@example.com"},
		{name: "invalid email returns empty", raw: "not-email", want: ""},
		{name: "display name form returns empty", raw: "Carer <carer@example.com>", want: ""},
		{name: "longer than column returns empty", raw: strings.Repeat("a", 40) + "@example.com", want: ""},
		{name: "empty returns empty", raw: "   ", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := NormalizeAuthEmail(testCase.raw); got != testCase.want {
				t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
			}
		})
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput(" CARER@EXAMPLE.COM ", "  StrongPass1  ")
	if err != nil {
		t.Fatalf("expected valid credentials input, got %v", err)
	}
	if email != "carer@example.com" {
		t.Fatalf("expected normalized email, got %q", email)
	}
	if password != "StrongPass1" {
		t.Fatalf("expected trimmed password, got %q", password)
	}

	_, _, err = NormalizeCredentialsInput("not-email", "StrongPass1")
	if !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for invalid email, got %v", err)
	}

	_, _, err = NormalizeCredentialsInput("carer@example.com", " ")
	if !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for empty password, got %v", err)
	}
}

func TestNormalizeTelephone(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "", want: ""},
		{raw: " 555-123-4567 ", want: "555-123-4567"},
		{raw: "+15551234567", want: "+15551234567"},
		{raw: "555-123-45678", wantErr: true},
		{raw: "call me", wantErr: true},
		{raw: "5+55", wantErr: true},
		{raw: "---", wantErr: true},
	}

	for _, testCase := range tests {
		got, err := NormalizeTelephone(testCase.raw)
		if testCase.wantErr {
			if !errors.Is(err, ErrTelephoneInvalid) {
				t.Fatalf("NormalizeTelephone(%q) error = %v, want ErrTelephoneInvalid", testCase.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeTelephone(%q) returned error: %v", testCase.raw, err)
		}
		if got != testCase.want {
			t.Fatalf("NormalizeTelephone(%q) = %q, want %q", testCase.raw, got, testCase.want)
		}
	}
}
