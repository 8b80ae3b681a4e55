// Package engine orchestrates logo generation: candidate sampling, quality
// gating, uniqueness bookkeeping, and result assembly.
//
// The engine itself is pure computation over in-memory values. The only
// injected effects are the uniqueness ledger and the logger; both default to
// no-op equivalents so library callers can run the engine with zero setup:
//
//	runner := engine.NewRunner(nil, nil)
//	result, err := runner.Generate(ctx, engine.Options{BrandName: "Acme"})
//	svg := result.Logos[0].SVG
package engine

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/logomark/logomark/pkg/algo"
	"github.com/logomark/logomark/pkg/errors"
	"github.com/logomark/logomark/pkg/quality"
	"github.com/logomark/logomark/pkg/seed"
)

// Defaults for generation requests.
const (
	DefaultVariations             = 5
	DefaultMinQualityScore        = 85.0
	DefaultCandidatesPerVariation = 5
)

// Salter produces the salt for one candidate attempt, keyed by variation and
// attempt index. The default draws random salts; tests inject deterministic
// sequences to freeze whole runs.
type Salter func(variation, attempt int) string

// RandomSalter returns 16 hex characters from crypto/rand.
func RandomSalter(int, int) string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// the clock rather than emit identical salts.
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	return hex.EncodeToString(buf[:])
}

// Options configures one generation request.
type Options struct {
	BrandName    string
	PrimaryColor string
	AccentColor  string

	// Algorithm overrides deterministic brand-based selection when set.
	Algorithm algo.Name

	// Variations is how many distinct logos to return.
	Variations int

	// MinQualityScore is the acceptance threshold in [0, 100]. A variation
	// that never reaches it still resolves to the best candidate seen.
	MinQualityScore float64

	// CandidatesPerVariation bounds the retry budget per variation.
	CandidatesPerVariation int

	// Category is recorded in metadata for downstream consumers; the
	// engine itself does not branch on it.
	Category string

	// Salter overrides candidate salt drawing. Nil means RandomSalter.
	Salter Salter

	// Logger receives progress events. Nil means discard.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks inputs and applies defaults. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateBrandName(o.BrandName); err != nil {
		return err
	}
	if err := errors.ValidateHexColor(o.PrimaryColor); err != nil {
		return err
	}
	if err := errors.ValidateHexColor(o.AccentColor); err != nil {
		return err
	}
	if o.Algorithm != "" && !algo.Valid(o.Algorithm) {
		return errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", o.Algorithm)
	}
	if o.MinQualityScore < 0 || o.MinQualityScore > 100 {
		return errors.New(errors.ErrCodeInvalidOptions,
			"min quality score must be in [0, 100], got %v", o.MinQualityScore)
	}
	if o.Variations <= 0 {
		o.Variations = DefaultVariations
	}
	if o.MinQualityScore == 0 {
		o.MinQualityScore = DefaultMinQualityScore
	}
	if o.CandidatesPerVariation <= 0 {
		o.CandidatesPerVariation = DefaultCandidatesPerVariation
	}
	if o.Salter == nil {
		o.Salter = RandomSalter
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// algorithm resolves the algorithm for this request.
func (o *Options) algorithm() algo.Name {
	if o.Algorithm != "" {
		return o.Algorithm
	}
	return SelectAlgorithm(o.BrandName)
}

// SelectAlgorithm deterministically picks an algorithm for a brand:
// hash(brand) mod |algorithms|, stable across calls and processes.
func SelectAlgorithm(brandName string) algo.Name {
	sum := sha256.Sum256([]byte(brandName))
	names := algo.Names()
	idx := binary.BigEndian.Uint64(sum[:8]) % uint64(len(names))
	return names[idx]
}

// SelectInfiniteAlgorithm is SelectAlgorithm restricted to the full-seed
// family, for flows that want a new mark per salt rather than a fixed
// brand mark.
func SelectInfiniteAlgorithm(brandName string) algo.Name {
	sum := sha256.Sum256([]byte(brandName))
	names := algo.InfiniteNames()
	idx := binary.BigEndian.Uint64(sum[:8]) % uint64(len(names))
	return names[idx]
}

// Quality carries the acceptance score of a logo.
type Quality struct {
	Score     float64           `json:"score"`
	Subscores quality.Subscores `json:"subscores"`
}

// Geometry summarizes the structure of a generated mark.
type Geometry struct {
	PathCount  int     `json:"path_count"`
	Complexity float64 `json:"complexity"`
}

// Colors records the resolved color set of a logo.
type Colors struct {
	Primary string   `json:"primary"`
	Accent  string   `json:"accent"`
	Palette []string `json:"palette"`
}

// Meta is the descriptive envelope around a generated logo.
type Meta struct {
	BrandName   string    `json:"brand_name"`
	Category    string    `json:"category,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	SeedHex     string    `json:"seed_hex"`
	Geometry    Geometry  `json:"geometry"`
	Colors      Colors    `json:"colors"`
}

// GeneratedLogo is one accepted generation result.
type GeneratedLogo struct {
	ID        string          `json:"id"`
	Hash      string          `json:"hash"`
	Algorithm algo.Name       `json:"algorithm"`
	Variant   int             `json:"variant"`
	SVG       string          `json:"svg"`
	ViewBox   string          `json:"view_box"`
	Params    seed.Parameters `json:"params"`
	Quality   Quality         `json:"quality"`
	Meta      Meta            `json:"meta"`
}

// Stats summarizes one generation run.
type Stats struct {
	Attempts  int           `json:"attempts"`
	Duplicate int           `json:"duplicates"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Result is the outcome of a Generate call. Logos appear in generation
// order, not score order.
type Result struct {
	Logos []GeneratedLogo `json:"logos"`
	Stats Stats           `json:"stats"`
}
