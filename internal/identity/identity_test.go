package identity

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      language.Tag
		wantError bool
	}{
		{name: "empty defaults to english", input: "", want: language.English},
		{name: "english", input: "en", want: language.English},
		{name: "english region", input: "en-US", want: language.English},
		{name: "french", input: "fr", want: language.French},
		{name: "french region", input: "fr-CA", want: language.French},
		{name: "malformed", input: "not a locale!", wantError: true},
		{name: "unsupported", input: "ja", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocale(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseLocale(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLocale(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLocale(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_ResolvesLocale(t *testing.T) {
	p := New(language.MustParse("fr-BE"), rand.New(rand.NewPCG(1, 2)))
	if p.Locale() != language.French {
		t.Errorf("expected french locale, got %v", p.Locale())
	}

	p = New(language.Japanese, rand.New(rand.NewPCG(1, 2)))
	if p.Locale() != language.English {
		t.Errorf("unsupported locale should fall back to english, got %v", p.Locale())
	}
}

func TestFullName(t *testing.T) {
	for _, locale := range []language.Tag{language.English, language.French} {
		t.Run(locale.String(), func(t *testing.T) {
			p := New(locale, rand.New(rand.NewPCG(42, 42)))
			for i := 0; i < 50; i++ {
				name := p.FullName()
				parts := strings.Split(name, " ")
				if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
					t.Errorf("name should be 'First Last', got %q", name)
				}
			}
		})
	}
}

func TestEmail(t *testing.T) {
	re := regexp.MustCompile(`^[a-z]+\.?[a-z]+\d{1,4}@[a-z.]+$`)
	for _, locale := range []language.Tag{language.English, language.French} {
		t.Run(locale.String(), func(t *testing.T) {
			p := New(locale, rand.New(rand.NewPCG(7, 7)))
			for i := 0; i < 100; i++ {
				email := p.Email()
				if !re.MatchString(email) {
					t.Errorf("email %q does not match expected shape", email)
				}
			}
		})
	}
}

func TestPerson_SeedIsReproducible(t *testing.T) {
	a := New(language.English, rand.New(rand.NewPCG(99, 99)))
	b := New(language.English, rand.New(rand.NewPCG(99, 99)))
	for i := 0; i < 10; i++ {
		if a.FullName() != b.FullName() {
			t.Fatal("same seed should produce the same names")
		}
		if a.Email() != b.Email() {
			t.Fatal("same seed should produce the same emails")
		}
	}
}

func TestPerson_NilRNG(t *testing.T) {
	p := New(DefaultLocale, nil)
	if p.FullName() == "" || p.Email() == "" {
		t.Error("person with nil rng should still generate values")
	}
}
