package patient

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/mrsinham/bulkforge/internal/identity"
	"github.com/mrsinham/bulkforge/internal/logging"
	"golang.org/x/text/language"
)

// constSource always returns the same value, so every phone draw collides.
type constSource struct{}

func (constSource) Uint64() uint64 { return 1 }

// scriptedProvider returns numbered names and emails to make ordering visible.
type scriptedProvider struct {
	names, emails int
}

func (p *scriptedProvider) FullName() string {
	p.names++
	return "Name" + strings.Repeat("I", p.names)
}

func (p *scriptedProvider) Email() string {
	p.emails++
	return "mail" + strings.Repeat("i", p.emails) + "@example.com"
}

func newTestBuilder(seed uint64) *Builder {
	rng := rand.New(rand.NewPCG(seed, seed))
	return NewBuilder(identity.New(language.English, rng), rng)
}

func TestBuild_RecordCount(t *testing.T) {
	for _, n := range []int{0, 1, 3, 250} {
		batch, err := newTestBuilder(42).Build(context.Background(), Request{FileName: "f", NamePrefix: "Test", RecordCount: n})
		if err != nil {
			t.Fatalf("Build(%d) failed: %v", n, err)
		}
		if len(batch) != n {
			t.Errorf("Build(%d) returned %d records", n, len(batch))
		}
	}
}

func TestBuild_Prefixes(t *testing.T) {
	batch, err := newTestBuilder(7).Build(context.Background(), Request{FileName: "f", NamePrefix: "Clinic", RecordCount: 20})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for i, r := range batch {
		if !strings.HasPrefix(r.FullName, "Clinic-") || len(r.FullName) == len("Clinic-") {
			t.Errorf("record %d: name %q should be Clinic-<name>", i, r.FullName)
		}
		if !strings.HasPrefix(r.Email, "Clinic-") || len(r.Email) == len("Clinic-") {
			t.Errorf("record %d: email %q should be Clinic-<email>", i, r.Email)
		}
	}
}

func TestBuild_EmptyPrefixDefaultsToTest(t *testing.T) {
	batch, err := newTestBuilder(1).Build(context.Background(), Request{FileName: "f", RecordCount: 2})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, r := range batch {
		if !strings.HasPrefix(r.FullName, "Test-") || !strings.HasPrefix(r.Email, "Test-") {
			t.Errorf("expected Test- prefix, got %q / %q", r.FullName, r.Email)
		}
	}
}

func TestBuild_UniquePhones(t *testing.T) {
	// 5000 records in a 810000 space makes collisions near certain, so the
	// redraw path is exercised.
	batch, err := newTestBuilder(3).Build(context.Background(), Request{FileName: "f", NamePrefix: "P", RecordCount: 5000})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	seen := make(map[string]bool, len(batch))
	for _, r := range batch {
		if seen[r.Phone] {
			t.Fatalf("duplicate phone %s", r.Phone)
		}
		seen[r.Phone] = true
	}
}

func TestBuild_PositionalOrder(t *testing.T) {
	b := NewBuilder(&scriptedProvider{}, rand.New(rand.NewPCG(5, 5)))
	batch, err := b.Build(context.Background(), Request{FileName: "f", NamePrefix: "X", RecordCount: 3})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	wantNames := []string{"X-NameI", "X-NameII", "X-NameIII"}
	wantEmails := []string{"X-maili@example.com", "X-mailii@example.com", "X-mailiii@example.com"}
	for i, r := range batch {
		if r.FullName != wantNames[i] {
			t.Errorf("record %d name = %q, want %q", i, r.FullName, wantNames[i])
		}
		if r.Email != wantEmails[i] {
			t.Errorf("record %d email = %q, want %q", i, r.Email, wantEmails[i])
		}
	}
}

func TestBuild_Exhausted(t *testing.T) {
	b := &Builder{
		Identity:         &scriptedProvider{},
		RNG:              rand.New(constSource{}),
		MaxPhoneAttempts: 5,
	}
	_, err := b.Build(context.Background(), Request{FileName: "f", RecordCount: 2})
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Fatalf("expected ErrGenerationExhausted, got %v", err)
	}
}

func TestBuild_TooManyRecords(t *testing.T) {
	_, err := newTestBuilder(1).Build(context.Background(), Request{FileName: "f", RecordCount: PhoneSpace + 1})
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Fatalf("expected ErrGenerationExhausted, got %v", err)
	}
}

func TestBuild_NegativeCount(t *testing.T) {
	if _, err := newTestBuilder(1).Build(context.Background(), Request{FileName: "f", RecordCount: -1}); err == nil {
		t.Fatal("expected error for negative record count")
	}
}

func TestBuild_FreshStatePerCall(t *testing.T) {
	b := newTestBuilder(11)
	first, err := b.Build(context.Background(), Request{FileName: "f", RecordCount: 4})
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	second, err := b.Build(context.Background(), Request{FileName: "f", RecordCount: 2})
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}
	if len(first) != 4 || len(second) != 2 {
		t.Errorf("batches should not leak into each other: got %d and %d", len(first), len(second))
	}
}

func TestBuild_LogsToContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := logging.WithLogger(context.Background(), logger)

	if _, err := newTestBuilder(9).Build(ctx, Request{FileName: "batch1", RecordCount: 2}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "building batch") || !strings.Contains(out, "file=batch1") {
		t.Errorf("Expected build logged to the context logger, got:\n%s", out)
	}
}
