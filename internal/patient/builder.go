package patient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/mrsinham/bulkforge/internal/identity"
	"github.com/mrsinham/bulkforge/internal/logging"
)

// DefaultMaxPhoneAttempts bounds the redraws for a single unique phone number.
const DefaultMaxPhoneAttempts = 10_000

// ErrGenerationExhausted is returned when no unused phone number could be
// drawn within the attempt cap, or the batch is larger than PhoneSpace.
var ErrGenerationExhausted = errors.New("phone number space exhausted")

// Builder assembles batches from an identity provider and a random source.
// It keeps no per-batch state, so one Builder can serve successive requests.
type Builder struct {
	Identity         identity.Provider
	RNG              *rand.Rand
	MaxPhoneAttempts int // 0 = DefaultMaxPhoneAttempts
}

// NewBuilder creates a Builder.
func NewBuilder(provider identity.Provider, rng *rand.Rand) *Builder {
	return &Builder{Identity: provider, RNG: rng}
}

// Build generates req.RecordCount records, logging to the logger in ctx.
//
// Names and emails are drawn independently from the provider, so a record's
// email is not derived from its name.
func (b *Builder) Build(ctx context.Context, req Request) (Batch, error) {
	n := req.RecordCount
	if n < 0 {
		return nil, fmt.Errorf("record count must be >= 0, got %d", n)
	}
	if n > PhoneSpace {
		return nil, fmt.Errorf("%w: %d records requested, at most %d unique numbers", ErrGenerationExhausted, n, PhoneSpace)
	}

	prefix := req.NamePrefix
	if prefix == "" {
		prefix = DefaultNamePrefix
	}

	logger := logging.FromContext(ctx)
	logger.Info("building batch", "file", req.FileName, "records", n, "prefix", prefix)

	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, prefix+"-"+b.Identity.FullName())
	}

	emails := make([]string, 0, n)
	for i := 0; i < n; i++ {
		emails = append(emails, prefix+"-"+b.Identity.Email())
	}

	phones := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		phone, err := b.uniquePhone(logger, seen)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		seen[phone] = struct{}{}
		phones = append(phones, phone)
	}

	batch := make(Batch, n)
	for i := range batch {
		batch[i] = Record{FullName: names[i], Email: emails[i], Phone: phones[i]}
	}

	logger.Debug("batch built", "records", len(batch))
	return batch, nil
}

// uniquePhone redraws until the formatted number is not in seen.
func (b *Builder) uniquePhone(logger *slog.Logger, seen map[string]struct{}) (string, error) {
	limit := b.MaxPhoneAttempts
	if limit <= 0 {
		limit = DefaultMaxPhoneAttempts
	}

	for attempt := 1; attempt <= limit; attempt++ {
		phone := FormatPhone(GeneratePhone(b.RNG))
		if _, dup := seen[phone]; !dup {
			return phone, nil
		}
		logger.Debug("phone collision, redrawing", "phone", phone, "attempt", attempt)
	}
	return "", fmt.Errorf("%w after %d attempts", ErrGenerationExhausted, limit)
}
