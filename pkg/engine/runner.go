package engine

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/logomark/logomark/pkg/algo"
	"github.com/logomark/logomark/pkg/color"
	"github.com/logomark/logomark/pkg/errors"
	"github.com/logomark/logomark/pkg/ledger"
	"github.com/logomark/logomark/pkg/quality"
	"github.com/logomark/logomark/pkg/seed"
	"github.com/logomark/logomark/pkg/svg"
)

// Runner drives generation against one ledger. It is stateless beyond its
// dependencies; one Runner can serve many requests.
type Runner struct {
	Ledger ledger.Ledger
	Logger *log.Logger
}

// NewRunner creates a runner. A nil ledger gets an isolated in-memory one;
// a nil logger falls back to the package-level default.
func NewRunner(l ledger.Ledger, logger *log.Logger) *Runner {
	if l == nil {
		l = ledger.NewMemory()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Ledger: l, Logger: logger}
}

// candidate is one sampled attempt inside a variation's retry loop.
type candidate struct {
	seed   *seed.MasterSeed
	svg    string
	report quality.Report
}

// Generate produces up to opts.Variations logos in generation order.
//
// Each variation runs its own lifecycle: sampling draws salted candidates
// until one clears the quality threshold or the budget runs out, then the
// best candidate seen is accepted. Acceptance inserts the winning hash into
// the ledger; a duplicate hash discards the candidate and resamples with a
// fresh salt. Exhausting either budget is not an error - the best candidate
// is returned with its true score visible.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(&opts)
	name := opts.algorithm()
	start := time.Now()

	result := &Result{Logos: make([]GeneratedLogo, 0, opts.Variations)}
	for v := 0; v < opts.Variations; v++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		best, attempts, err := r.sampleVariation(ctx, &opts, name, v)
		if err != nil {
			return nil, err
		}
		result.Stats.Attempts += attempts

		accepted, dupes := r.accept(ctx, &opts, name, v, best)
		result.Stats.Duplicate += dupes

		logo := r.assemble(&opts, name, v, accepted)
		result.Logos = append(result.Logos, logo)

		logger.Info("accepted variation",
			"variant", v,
			"algorithm", name,
			"score", logo.Quality.Score,
			"attempts", attempts)
	}
	result.Stats.Elapsed = time.Since(start)
	return result, nil
}

// sampleVariation draws candidates until the threshold is met or the budget
// is spent, returning the best-scoring candidate seen.
func (r *Runner) sampleVariation(ctx context.Context, opts *Options, name algo.Name, v int) (candidate, int, error) {
	var best candidate
	attempts := 0
	for c := 0; c < opts.CandidatesPerVariation; c++ {
		if err := ctx.Err(); err != nil {
			return candidate{}, attempts, err
		}
		cand, err := r.sample(opts, name, opts.Salter(v, c))
		if err != nil {
			return candidate{}, attempts, err
		}
		attempts++
		if cand.report.Score > best.report.Score || best.seed == nil {
			best = cand
		}
		if cand.report.Score >= opts.MinQualityScore {
			break
		}
	}
	return best, attempts, nil
}

// sample derives a master seed, runs the algorithm, and scores the output.
func (r *Runner) sample(opts *Options, name algo.Name, salt string) (candidate, error) {
	ms := seed.Derive(opts.BrandName, string(name), salt)
	doc, err := algo.Generate(name, algo.Input{
		BrandName:    opts.BrandName,
		PrimaryColor: opts.PrimaryColor,
		AccentColor:  opts.AccentColor,
		Seed:         ms,
	})
	if err != nil {
		return candidate{}, err
	}
	return candidate{seed: ms, svg: doc, report: quality.Score(doc, ms.Params)}, nil
}

// accept inserts the winner into the ledger. Duplicate hashes trigger
// resampling with fresh salts, up to one extra budget; if that is also
// exhausted the candidate ships anyway. Duplicate avoidance is a soft
// constraint given the size of the parameter space, not a correctness gate.
func (r *Runner) accept(ctx context.Context, opts *Options, name algo.Name, v int, best candidate) (candidate, int) {
	logger := r.logger(opts)
	dupes := 0
	for retry := 0; ; retry++ {
		err := r.Ledger.Insert(ctx, ledger.Entry{
			Hash:         best.seed.HashHex,
			BrandName:    opts.BrandName,
			Algorithm:    string(name),
			Variant:      v,
			CreatedAt:    time.Now().UTC(),
			QualityScore: best.report.Score,
		})
		if err == nil {
			return best, dupes
		}
		if !stderrors.Is(err, ledger.ErrDuplicate) {
			// Ledger unavailable: accept without the uniqueness guarantee
			// rather than fail the whole request.
			logger.Warn("ledger insert failed, accepting unrecorded", "err", err)
			return best, dupes
		}
		dupes++
		if retry >= opts.CandidatesPerVariation {
			logger.Warn("duplicate retry budget exhausted", "hash", best.seed.HashHex)
			return best, dupes
		}
		next, err := r.sample(opts, name, opts.Salter(v, opts.CandidatesPerVariation+retry))
		if err != nil {
			return best, dupes
		}
		best = next
	}
}

// assemble builds the public record for an accepted candidate.
func (r *Runner) assemble(opts *Options, name algo.Name, v int, cand candidate) GeneratedLogo {
	in := algo.Input{PrimaryColor: opts.PrimaryColor, AccentColor: opts.AccentColor}
	primary := in.Primary()
	accent := in.Accent()

	return GeneratedLogo{
		ID:        uuid.NewString(),
		Hash:      cand.seed.HashHex,
		Algorithm: name,
		Variant:   v,
		SVG:       cand.svg,
		ViewBox:   svg.ViewBox,
		Params:    cand.seed.Params,
		Quality:   Quality{Score: cand.report.Score, Subscores: cand.report.Subscores},
		Meta: Meta{
			BrandName:   opts.BrandName,
			Category:    opts.Category,
			GeneratedAt: time.Now().UTC(),
			SeedHex:     cand.seed.HashHex,
			Geometry: Geometry{
				PathCount:  quality.ElementCount(cand.svg),
				Complexity: quality.Complexity(cand.svg),
			},
			Colors: Colors{
				Primary: primary,
				Accent:  accent,
				Palette: color.Palette(primary, accent),
			},
		},
	}
}

// GenerateInfiniteLogos is the canonical multi-variation entry point: it
// picks an infinite-family algorithm for the brand and samples the given
// number of variations against the runner's ledger.
func (r *Runner) GenerateInfiniteLogos(ctx context.Context, brandName string, variations int, minQualityScore float64, candidatesPerVariation int) (*Result, error) {
	return r.Generate(ctx, Options{
		BrandName:              brandName,
		Algorithm:              SelectInfiniteAlgorithm(brandName),
		Variations:             variations,
		MinQualityScore:        minQualityScore,
		CandidatesPerVariation: candidatesPerVariation,
	})
}

// VerifyUniqueness reports whether a hash was already emitted.
func (r *Runner) VerifyUniqueness(ctx context.Context, hash string) (bool, error) {
	exists, err := r.Ledger.Contains(ctx, hash)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeLedgerUnavailable, err, "verify %s", hash)
	}
	return !exists, nil
}

// Regenerate produces a single fresh candidate for the brand/algorithm pair
// with a new random salt, for "try again" flows. The result bypasses the
// quality retry loop and is not inserted into the ledger; callers wanting
// the uniqueness guarantee must re-check and insert.
func (r *Runner) Regenerate(ctx context.Context, opts Options) (*GeneratedLogo, error) {
	opts.Variations = 1
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := opts.algorithm()
	cand, err := r.sample(&opts, name, RandomSalter(0, 0))
	if err != nil {
		return nil, err
	}
	logo := r.assemble(&opts, name, 0, cand)
	return &logo, nil
}

func (r *Runner) logger(opts *Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
