package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Ankara", "ankara"},
		{"trim", "  paris  ", "paris"},
		{"nfc composition", "café", "café"},
		{"already normalized", "café", "café"},
		{"empty", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeAnswer(tc.in); got != tc.want {
				t.Errorf("NormalizeAnswer(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeAnswerSet(t *testing.T) {
	got := NormalizeAnswerSet([]string{" Red ", "red", "", "  ", "Blue", "café", "café"})
	want := []string{"red", "blue", "café"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAnswerSet = %v, want %v", got, want)
	}
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(8)
	if len(s) != 8 {
		t.Fatalf("expected length 8, got %d", len(s))
	}
	if s == GenerateRandomString(8) && s == GenerateRandomString(8) {
		t.Errorf("three identical draws, generator looks broken")
	}
}

func TestGenerateOTPCode(t *testing.T) {
	code := GenerateOTPCode()
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("non-digit %q in OTP code %q", r, code)
		}
	}
}
