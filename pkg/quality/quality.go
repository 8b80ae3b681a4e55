// Package quality scores generated SVG logos without human review.
//
// The score is a deterministic heuristic over structural complexity,
// geometric sanity, and document conformance. It gates candidate acceptance
// in the orchestrator; the independent Complexity metric feeds logo
// metadata and never influences acceptance weighting.
package quality

import (
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/logomark/logomark/pkg/seed"
)

// Ideal element-count band. Marks outside it score down linearly: too
// sparse reads as unfinished, too dense reads as noise.
const (
	IdealMinElements = 3
	IdealMaxElements = 25
)

// Subscores break the total down per heuristic, each in [0, 100].
type Subscores struct {
	Complexity  float64 `json:"complexity"`
	Geometry    float64 `json:"geometry"`
	Conformance float64 `json:"conformance"`
}

// Report is the result of scoring one SVG/parameter pair.
type Report struct {
	Score     float64   `json:"score"`
	Subscores Subscores `json:"subscores"`
}

// Acceptance weights. Complexity carries the most signal; geometry and
// conformance mostly catch broken output.
const (
	weightComplexity  = 0.4
	weightGeometry    = 0.3
	weightConformance = 0.3
)

// Score evaluates an SVG document against its generation parameters.
// Deterministic and side-effect free: equal input, equal report.
func Score(svgDoc string, params seed.Parameters) Report {
	sub := Subscores{
		Complexity:  scoreComplexity(svgDoc),
		Geometry:    scoreGeometry(svgDoc, params),
		Conformance: scoreConformance(svgDoc),
	}
	total := sub.Complexity*weightComplexity +
		sub.Geometry*weightGeometry +
		sub.Conformance*weightConformance
	return Report{Score: clampScore(total), Subscores: sub}
}

var elementPattern = regexp.MustCompile(`<(path|circle|rect|line|ellipse|polygon)\b`)

// ElementCount counts drawable elements in the document.
func ElementCount(svgDoc string) int {
	return len(elementPattern.FindAllString(svgDoc, -1))
}

func scoreComplexity(svgDoc string) float64 {
	n := ElementCount(svgDoc)
	switch {
	case n == 0:
		return 0
	case n < IdealMinElements:
		// One or two elements: thin but not empty.
		return 40 + 20*float64(n-1)
	case n <= IdealMaxElements:
		return 100
	default:
		over := float64(n - IdealMaxElements)
		return clampScore(100 - over*3)
	}
}

// Degenerate markers: zero-size shapes contribute nothing visually and
// usually indicate a collapsed parameter combination.
var degeneratePatterns = []string{
	`r="0"`, `width="0"`, `height="0"`, `rx="0" ry="0"`, `d=""`,
}

func scoreGeometry(svgDoc string, params seed.Parameters) float64 {
	score := 100.0
	for _, pat := range degeneratePatterns {
		score -= 25 * float64(strings.Count(svgDoc, pat))
	}
	// Hairline strokes disappear at favicon sizes.
	if params.StrokeWidth > 0 && params.StrokeWidth < 2 {
		score -= 20
	}
	return clampScore(score)
}

func scoreConformance(svgDoc string) float64 {
	score := 100.0
	if !strings.Contains(svgDoc, `xmlns="http://www.w3.org/2000/svg"`) {
		score -= 40
	}
	if !strings.Contains(svgDoc, `viewBox="0 0 100 100"`) {
		score -= 30
	}
	if !wellFormed(svgDoc) {
		score -= 50
	}
	// Self-containment: any href points at an external resource.
	if strings.Contains(svgDoc, "href=") {
		score -= 30
	}
	return clampScore(score)
}

// wellFormed checks the document parses as XML with a single svg root.
func wellFormed(svgDoc string) bool {
	var root struct {
		XMLName xml.Name `xml:"svg"`
	}
	return xml.Unmarshal([]byte(svgDoc), &root) == nil
}

// Command weights for the complexity metric. Curves cost more than lines;
// arcs most of all.
var commandWeights = map[byte]float64{
	'M': 1, 'L': 1, 'H': 1, 'V': 1,
	'Q': 2, 'S': 2, 'T': 2,
	'C': 3, 'A': 4, 'Z': 0.5,
}

var pathDataPattern = regexp.MustCompile(`\bd="([^"]*)"`)

// Complexity returns the weighted draw-command count for a document. It is
// recorded in logo metadata and intentionally independent of the acceptance
// score weights.
func Complexity(svgDoc string) float64 {
	total := 0.0
	for _, m := range pathDataPattern.FindAllStringSubmatch(svgDoc, -1) {
		for i := 0; i < len(m[1]); i++ {
			c := m[1][i]
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			if w, ok := commandWeights[c]; ok {
				total += w
			}
		}
	}
	// Primitives count as two commands' worth of drawing each.
	for _, tag := range []string{"<circle", "<rect", "<line", "<ellipse", "<polygon"} {
		total += 2 * float64(strings.Count(svgDoc, tag))
	}
	return total
}

func clampScore(v float64) float64 {
	return max(0, min(100, v))
}
