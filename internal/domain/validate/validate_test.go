package validate

import (
	"errors"
	"testing"
	"time"
)

func TestRequireText(t *testing.T) {
	got, err := RequireText("  Ana  ", "nombres")
	if err != nil {
		t.Fatalf("RequireText error: %v", err)
	}
	if got != "Ana" {
		t.Fatalf("expected trimmed text, got %q", got)
	}

	_, err = RequireText("   ", "nombres")
	if err == nil {
		t.Fatalf("expected error for blank text")
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var ve *Error
	if !errors.As(err, &ve) || ve.Field != "nombres" {
		t.Fatalf("expected field 'nombres', got %#v", err)
	}
}

func TestNormalizeNombre(t *testing.T) {
	got, err := NormalizeNombre("  control   sano ", "nombreMotivo")
	if err != nil {
		t.Fatalf("NormalizeNombre error: %v", err)
	}
	if got != "Control sano" {
		t.Fatalf("expected 'Control sano', got %q", got)
	}
}

func TestNormalizeRUT(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.345.678-9", "12345678-9"},
		{"12345678-9", "12345678-9"},
		{" 9876543-k ", "9876543-K"},
	}
	for _, c := range cases {
		got, err := NormalizeRUT(c.in)
		if err != nil {
			t.Fatalf("NormalizeRUT(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("NormalizeRUT(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	bad := []string{"", "123456789", "abc-9", "12345678-X", "12345678-99"}
	for _, in := range bad {
		if _, err := NormalizeRUT(in); err == nil {
			t.Fatalf("NormalizeRUT(%q) expected error", in)
		}
	}
}

func TestBirthDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got, err := BirthDate("2020-01-15", "fechaNacimientoEst", now)
	if err != nil {
		t.Fatalf("BirthDate error: %v", err)
	}
	if got != "2020-01-15" {
		t.Fatalf("expected normalized date, got %q", got)
	}

	if _, err := BirthDate("2030-01-01", "fechaNacimientoEst", now); err == nil {
		t.Fatalf("expected error for future date")
	}
	if _, err := BirthDate("1980-01-01", "fechaNacimientoEst", now); err == nil {
		t.Fatalf("expected error for date before floor year")
	}
	if _, err := BirthDate("15-01-2020", "fechaNacimientoEst", now); err == nil {
		t.Fatalf("expected error for wrong format")
	}
}

func TestNormalizeConvive(t *testing.T) {
	got, err := NormalizeConvive([]string{"Gatos", "Perros", "Gatos"})
	if err != nil {
		t.Fatalf("NormalizeConvive error: %v", err)
	}
	if got != "Gatos,Perros" {
		t.Fatalf("expected 'Gatos,Perros', got %q", got)
	}

	// También acepta la forma "Perros,Gatos" en un solo string.
	got, err = NormalizeConvive([]string{"Perros, Gatos"})
	if err != nil {
		t.Fatalf("NormalizeConvive error: %v", err)
	}
	if got != "Gatos,Perros" {
		t.Fatalf("expected 'Gatos,Perros', got %q", got)
	}

	if _, err := NormalizeConvive([]string{"Dragones"}); err == nil {
		t.Fatalf("expected error for value outside the controlled list")
	}

	got, err = NormalizeConvive(nil)
	if err != nil || got != "" {
		t.Fatalf("expected empty result for nil input, got %q err=%v", got, err)
	}
}
