package engine

import (
	"context"
	"encoding/xml"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logomark/logomark/pkg/algo"
	"github.com/logomark/logomark/pkg/ledger"
	"github.com/logomark/logomark/pkg/seed"
)

// indexSalter is a deterministic salter for reproducible tests.
func indexSalter(v, c int) string {
	return fmt.Sprintf("s-%d-%d", v, c)
}

func TestGenerateEndToEnd(t *testing.T) {
	led := ledger.NewMemory()
	r := NewRunner(led, nil)

	result, err := r.Generate(context.Background(), Options{
		BrandName:  "Acme",
		Variations: 3,
		Salter:     indexSalter,
	})
	require.NoError(t, err)
	require.Len(t, result.Logos, 3)
	require.GreaterOrEqual(t, result.Stats.Attempts, 3)

	hashes := map[string]bool{}
	for _, logo := range result.Logos {
		require.NotEmpty(t, logo.ID)
		require.Len(t, logo.Hash, 64)
		require.False(t, hashes[logo.Hash], "variation hashes must be distinct")
		hashes[logo.Hash] = true

		require.GreaterOrEqual(t, logo.Quality.Score, 0.0)
		require.LessOrEqual(t, logo.Quality.Score, 100.0)
		require.Equal(t, "Acme", logo.Meta.BrandName)
		require.Len(t, logo.Meta.Colors.Palette, 5)

		var root struct {
			XMLName xml.Name `xml:"svg"`
		}
		require.NoError(t, xml.Unmarshal([]byte(logo.SVG), &root), "SVG must be well-formed")
	}

	// Every accepted variation is recorded.
	require.Equal(t, 3, led.Len())
}

func TestGenerateReproducible(t *testing.T) {
	run := func() *Result {
		r := NewRunner(ledger.NewMemory(), nil)
		result, err := r.Generate(context.Background(), Options{
			BrandName:  "Globex",
			Algorithm:  algo.LetterFusion,
			Variations: 2,
			Salter:     indexSalter,
		})
		require.NoError(t, err)
		return result
	}

	a, b := run(), run()
	require.Len(t, b.Logos, len(a.Logos))
	for i := range a.Logos {
		require.Equal(t, a.Logos[i].Hash, b.Logos[i].Hash)
		require.Equal(t, a.Logos[i].SVG, b.Logos[i].SVG, "same salter must reproduce identical bytes")
	}
}

func TestGenerateDuplicateResample(t *testing.T) {
	led := ledger.NewMemory()
	r := NewRunner(led, nil)

	// Occupy the hash the first candidate will produce, forcing a resample.
	name := algo.CloverRadialV2
	taken := seed.Derive("Acme", string(name), indexSalter(0, 0)).HashHex
	require.NoError(t, led.Insert(context.Background(), ledger.Entry{Hash: taken}))

	result, err := r.Generate(context.Background(), Options{
		BrandName:       "Acme",
		Algorithm:       name,
		Variations:      1,
		MinQualityScore: 1, // accept the first candidate
		Salter:          indexSalter,
	})
	require.NoError(t, err)
	require.Len(t, result.Logos, 1)
	require.GreaterOrEqual(t, result.Stats.Duplicate, 1)
	require.NotEqual(t, taken, result.Logos[0].Hash, "duplicate hash must be resampled")
}

func TestGenerateUniqueAcrossBrands(t *testing.T) {
	led := ledger.NewMemory()
	r := NewRunner(led, nil)

	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		result, err := r.Generate(context.Background(), Options{
			BrandName:  fmt.Sprintf("Brand-%d", i),
			Variations: 1,
			Salter:     indexSalter,
		})
		require.NoError(t, err)
		hash := result.Logos[0].Hash
		require.False(t, seen[hash], "hash collision across brands")
		seen[hash] = true
	}
	require.Equal(t, 300, led.Len())
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(nil, nil)
	_, err := r.Generate(ctx, Options{BrandName: "Acme", Salter: indexSalter})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateInfiniteLogos(t *testing.T) {
	r := NewRunner(nil, nil)
	result, err := r.GenerateInfiniteLogos(context.Background(), "Acme", 2, 50, 3)
	require.NoError(t, err)
	require.Len(t, result.Logos, 2)
	for _, logo := range result.Logos {
		require.Equal(t, algo.FamilyInfinite, algo.FamilyOf(logo.Algorithm))
	}
}

func TestRegenerate(t *testing.T) {
	led := ledger.NewMemory()
	r := NewRunner(led, nil)

	a, err := r.Regenerate(context.Background(), Options{BrandName: "Acme"})
	require.NoError(t, err)
	b, err := r.Regenerate(context.Background(), Options{BrandName: "Acme"})
	require.NoError(t, err)

	require.NotEqual(t, a.Hash, b.Hash, "regeneration draws fresh salts")
	require.Equal(t, 0, led.Len(), "regeneration must not record entries")
}

func TestVerifyUniqueness(t *testing.T) {
	led := ledger.NewMemory()
	r := NewRunner(led, nil)
	ctx := context.Background()

	unique, err := r.VerifyUniqueness(ctx, "deadbeef")
	require.NoError(t, err)
	require.True(t, unique)

	require.NoError(t, led.Insert(ctx, ledger.Entry{Hash: "deadbeef"}))
	unique, err = r.VerifyUniqueness(ctx, "deadbeef")
	require.NoError(t, err)
	require.False(t, unique)
}
