// Package pkg provides the core libraries for Logomark procedural logo
// generation.
//
// # Overview
//
// Logomark turns a brand name into a unique, deterministic SVG mark. The
// pkg directory is organized by pipeline stage:
//
//  1. [seed] - Hash-based parameter derivation (brand + algorithm + salt)
//  2. [color] - Hex color math, palettes, and contrast checks
//  3. [svg] - Minimal SVG document builder
//  4. [algo] - The generation algorithms themselves
//  5. [quality] - Structural scoring of generated marks
//  6. [ledger] - Uniqueness registry with pluggable backends
//  7. [engine] - Orchestration (derive → generate → score → record)
//  8. [guidelines] - Brand-usage documents derived from a logo
//
// # Architecture
//
// The typical data flow through Logomark:
//
//	Brand Name (+ optional salt)
//	         ↓
//	    [seed] package (SHA-256 → parameter set)
//	         ↓
//	    [algo] package (parameters → SVG via [svg])
//	         ↓
//	    [quality] package (score, accept or resample)
//	         ↓
//	    [ledger] package (record accepted hashes)
//	         ↓
//	    SVG/JSON output + [guidelines]
//
// # Quick Start
//
//	runner := engine.NewRunner(nil, nil)
//	result, err := runner.Generate(ctx, engine.Options{BrandName: "Acme"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Logos[0].SVG)
//
// Generation is deterministic: the same brand, algorithm, and salt always
// produce byte-identical SVG.
package pkg
