package patient

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{1235550678, "123-555-0678"},
		{1005550100, "100-555-0100"},
		{9995550999, "999-555-0999"},
		{4565550123, "456-555-0123"},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatInt(tt.in, 10), func(t *testing.T) {
			if got := FormatPhone(tt.in); got != tt.want {
				t.Errorf("FormatPhone(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGeneratePhone_Shape(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 1000; i++ {
		n := GeneratePhone(rng)
		s := strconv.FormatInt(n, 10)
		if len(s) != 10 {
			t.Fatalf("phone %d should have 10 digits", n)
		}
		if s[3:7] != "5550" {
			t.Fatalf("phone %d should carry the reserved 5550 segment, got %s", n, s[3:7])
		}
		if s[0] == '0' || s[7] == '0' {
			t.Fatalf("random groups of %d should be in 100-999", n)
		}
	}
}

func TestFormattedPhone_Pattern(t *testing.T) {
	re := regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	rng := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 1000; i++ {
		s := FormatPhone(GeneratePhone(rng))
		if !re.MatchString(s) {
			t.Fatalf("phone %q does not match DDD-DDD-DDDD", s)
		}
		if digits := s[4:7] + s[8:9]; digits != "5550" {
			t.Fatalf("phone %q: digits 4-7 should be 5550, got %s", s, digits)
		}
	}
}
