// Package bulk runs one submission end to end: validate the raw input, build
// the patient batch and write it to disk.
package bulk

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/mrsinham/bulkforge/internal/identity"
	"github.com/mrsinham/bulkforge/internal/logging"
	"github.com/mrsinham/bulkforge/internal/patient"
	"github.com/mrsinham/bulkforge/internal/sheet"
	"golang.org/x/text/language"
)

// Options configures a Service.
type Options struct {
	OutputDir        string       // Directory for output files (default: ".")
	Format           sheet.Format // Output format (default: xlsx)
	Locale           language.Tag // Identity locale (default: identity.DefaultLocale)
	Seed             int64        // 0 = fresh random draws
	MaxPhoneAttempts int          // 0 = patient.DefaultMaxPhoneAttempts
}

// Outcome is what the presentation layer shows after a submission: either a
// success message or the validation errors.
type Outcome struct {
	Message string
	Errors  []string
	Path    string
	Records int
}

// OK reports whether a file was written.
func (o Outcome) OK() bool {
	return len(o.Errors) == 0
}

// SuccessMessage is the notice shown after a file has been written.
func SuccessMessage(fileName string, records int) string {
	return fmt.Sprintf("The worksheet file %s has been created and %d patient(s) have been added.", fileName, records)
}

// Service processes submissions one at a time.
type Service struct {
	opts    Options
	builder *patient.Builder
	writer  *sheet.Writer
}

// New creates a Service.
func New(opts Options) *Service {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Format == "" {
		opts.Format = sheet.XLSX
	}
	if opts.Locale == language.Und {
		opts.Locale = identity.DefaultLocale
	}

	rng := newRNG(opts.Seed)
	builder := patient.NewBuilder(identity.New(opts.Locale, rng), rng)
	builder.MaxPhoneAttempts = opts.MaxPhoneAttempts

	return &Service{
		opts:    opts,
		builder: builder,
		writer:  sheet.NewWriter(opts.Format),
	}
}

func newRNG(seed int64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	}
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, rand.Uint64()))
}

// Options returns the effective options after defaults were applied.
func (s *Service) Options() Options {
	return s.opts
}

// Submit validates raw and, if it is acceptable, generates and writes the
// batch. Validation problems are reported in Outcome.Errors with a nil error;
// generation and I/O failures are returned as errors and leave no file behind.
func (s *Service) Submit(ctx context.Context, raw patient.Raw) (Outcome, error) {
	logger := logging.FromContext(ctx)

	res := patient.Validate(raw)
	if !res.OK() {
		logger.Warn("submission rejected", "errors", len(res.Errors))
		return Outcome{Errors: res.Errors}, nil
	}
	req := *res.Request

	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	path := sheet.Path(s.opts.OutputDir, req.FileName, s.opts.Format)
	ctx = logging.WithLogger(ctx, logging.WithFields(ctx, "path", path))

	batch, err := s.builder.Build(ctx, req)
	if err != nil {
		return Outcome{}, fmt.Errorf("generate patients: %w", err)
	}

	if err := s.writer.Write(ctx, path, batch); err != nil {
		return Outcome{}, fmt.Errorf("write %s: %w", s.opts.Format, err)
	}

	return Outcome{
		Message: SuccessMessage(req.FileName, len(batch)),
		Path:    path,
		Records: len(batch),
	}, nil
}
