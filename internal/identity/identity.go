// Package identity supplies synthetic full names and email addresses.
//
// A Person is bound to one locale at construction and holds no state besides
// its random source, so every call is an independent draw.
package identity

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Provider is the contract the batch builder relies on.
type Provider interface {
	FullName() string
	Email() string
}

// DefaultLocale is used when no locale is configured.
var DefaultLocale = language.English

var (
	supportedLocales = []language.Tag{language.English, language.French}
	localeMatcher    = language.NewMatcher(supportedLocales)
	localeNames      = map[language.Tag]*nameSet{
		language.English: &english,
		language.French:  &french,
	}
)

// SupportedLocales returns the locales a Person can be built for.
func SupportedLocales() []string {
	out := make([]string, len(supportedLocales))
	for i, t := range supportedLocales {
		out[i] = t.String()
	}
	return out
}

// ParseLocale resolves a BCP 47 string such as "en", "en-US" or "fr-CA" to
// one of the supported locales. An empty string yields DefaultLocale.
func ParseLocale(s string) (language.Tag, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("unsupported locale %q, valid locales: %v", s, SupportedLocales())
	}
	return supportedLocales[idx], nil
}

// Person generates identities for a single locale.
type Person struct {
	locale language.Tag
	names  *nameSet
	rng    *rand.Rand
}

// New creates a Person for locale. Unsupported locales fall back to the
// closest supported one. If rng is nil, a time-seeded source is used.
func New(locale language.Tag, rng *rand.Rand) *Person {
	_, idx, _ := localeMatcher.Match(locale)
	resolved := supportedLocales[idx]
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return &Person{
		locale: resolved,
		names:  localeNames[resolved],
		rng:    rng,
	}
}

// Locale returns the locale the Person was resolved to.
func (p *Person) Locale() language.Tag {
	return p.locale
}

// FullName returns "First Last", with an even split between male and female
// first names.
func (p *Person) FullName() string {
	first := p.names.femaleFirst
	if p.rng.IntN(2) == 0 {
		first = p.names.maleFirst
	}
	return p.pick(first) + " " + p.pick(p.names.last)
}

// Email returns an address shaped like word.word1234@domain.
func (p *Person) Email() string {
	var sb strings.Builder
	sb.WriteString(p.pick(emailWords))
	if p.rng.IntN(2) == 0 {
		sb.WriteByte('.')
	}
	sb.WriteString(p.pick(emailWords))
	fmt.Fprintf(&sb, "%d", 1+p.rng.IntN(9999))
	sb.WriteByte('@')
	sb.WriteString(p.pick(p.names.domains))
	return sb.String()
}

func (p *Person) pick(s []string) string {
	return s[p.rng.IntN(len(s))]
}
