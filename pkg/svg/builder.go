// Package svg assembles self-contained SVG documents for logo generators.
//
// The Builder decouples generators from raw string concatenation: shapes and
// defs are appended through typed methods and Build emits one namespaced
// document with the canonical 100x100 viewBox. Output is byte-stable for a
// fixed call sequence, which is what makes whole-logo determinism testable.
//
// The builder never interprets or rewrites caller-supplied attribute values;
// color resolution stays with the caller.
package svg

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ViewBox is the canonical coordinate system for every generated logo.
const ViewBox = "0 0 100 100"

// Attrs holds extra XML attributes for an element. Keys are emitted in
// sorted order so identical input yields identical bytes.
type Attrs map[string]string

// Stop is one gradient color stop. Offset is in [0, 1].
type Stop struct {
	Offset  float64
	Color   string
	Opacity float64 // 0 means omit (fully opaque)
}

// Builder accumulates defs and body content for one SVG document.
// The zero value is not usable; call New.
type Builder struct {
	defs bytes.Buffer
	body bytes.Buffer
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Path appends a <path> with the given path data.
func (b *Builder) Path(d string, attrs Attrs) {
	b.element("path", merge(Attrs{"d": d}, attrs))
}

// Rect appends a <rect>.
func (b *Builder) Rect(x, y, w, h float64, attrs Attrs) {
	b.element("rect", merge(Attrs{
		"x": Num(x), "y": Num(y), "width": Num(w), "height": Num(h),
	}, attrs))
}

// Circle appends a <circle>.
func (b *Builder) Circle(cx, cy, r float64, attrs Attrs) {
	b.element("circle", merge(Attrs{
		"cx": Num(cx), "cy": Num(cy), "r": Num(r),
	}, attrs))
}

// Ellipse appends an <ellipse>.
func (b *Builder) Ellipse(cx, cy, rx, ry float64, attrs Attrs) {
	b.element("ellipse", merge(Attrs{
		"cx": Num(cx), "cy": Num(cy), "rx": Num(rx), "ry": Num(ry),
	}, attrs))
}

// Line appends a <line>.
func (b *Builder) Line(x1, y1, x2, y2 float64, attrs Attrs) {
	b.element("line", merge(Attrs{
		"x1": Num(x1), "y1": Num(y1), "x2": Num(x2), "y2": Num(y2),
	}, attrs))
}

// Polygon appends a <polygon> from x,y point pairs.
func (b *Builder) Polygon(points []Point, attrs Attrs) {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = Num(p.X) + "," + Num(p.Y)
	}
	b.element("polygon", merge(Attrs{"points": strings.Join(parts, " ")}, attrs))
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Text appends a <text> element anchored at (x, y). Content is XML-escaped.
func (b *Builder) Text(x, y float64, content string, attrs Attrs) {
	a := merge(Attrs{"x": Num(x), "y": Num(y)}, attrs)
	b.body.WriteString("  <text")
	writeAttrs(&b.body, a)
	b.body.WriteString(">" + textEscaper.Replace(content) + "</text>\n")
}

// Group wraps everything fn appends in a <g> carrying attrs.
func (b *Builder) Group(attrs Attrs, fn func(*Builder)) {
	b.body.WriteString("  <g")
	writeAttrs(&b.body, attrs)
	b.body.WriteString(">\n")
	fn(b)
	b.body.WriteString("  </g>\n")
}

// GroupTransform is Group with a single transform attribute.
func (b *Builder) GroupTransform(transform string, fn func(*Builder)) {
	b.Group(Attrs{"transform": transform}, fn)
}

// LinearGradient registers a linear gradient def. The angle is in degrees;
// 0 points right, 90 points down, matching SVG's coordinate system.
func (b *Builder) LinearGradient(id string, angle float64, stops []Stop) {
	x2, y2 := gradientVector(angle)
	fmt.Fprintf(&b.defs, `    <linearGradient id="%s" x1="0%%" y1="0%%" x2="%s%%" y2="%s%%">`+"\n",
		id, Num(x2*100), Num(y2*100))
	writeStops(&b.defs, stops)
	b.defs.WriteString("    </linearGradient>\n")
}

// RadialGradient registers a radial gradient def centered in the viewBox.
// Spread in (0, 1] scales the gradient radius.
func (b *Builder) RadialGradient(id string, spread float64, stops []Stop) {
	fmt.Fprintf(&b.defs, `    <radialGradient id="%s" cx="50%%" cy="50%%" r="%s%%">`+"\n",
		id, Num(spread*50))
	writeStops(&b.defs, stops)
	b.defs.WriteString("    </radialGradient>\n")
}

// BlurFilter registers a gaussian-blur filter def.
func (b *Builder) BlurFilter(id string, stdDeviation float64) {
	fmt.Fprintf(&b.defs,
		`    <filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%"><feGaussianBlur stdDeviation="%s"/></filter>`+"\n",
		id, Num(stdDeviation))
}

// Mask registers a <mask> def whose content fn appends.
func (b *Builder) Mask(id string, fn func(*Builder)) {
	b.def("mask", id, fn)
}

// ClipPath registers a <clipPath> def whose content fn appends.
func (b *Builder) ClipPath(id string, fn func(*Builder)) {
	b.def("clipPath", id, fn)
}

// Build emits the complete document. Defs always precede body content
// regardless of append order.
func (b *Builder) Build() string {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" fill="none">`+"\n", ViewBox)
	if b.defs.Len() > 0 {
		out.WriteString("  <defs>\n")
		out.Write(b.defs.Bytes())
		out.WriteString("  </defs>\n")
	}
	out.Write(b.body.Bytes())
	out.WriteString("</svg>\n")
	return out.String()
}

func (b *Builder) element(name string, attrs Attrs) {
	b.body.WriteString("  <" + name)
	writeAttrs(&b.body, attrs)
	b.body.WriteString("/>\n")
}

func (b *Builder) def(name, id string, fn func(*Builder)) {
	var inner Builder
	fn(&inner)
	fmt.Fprintf(&b.defs, `    <%s id="%s">`+"\n", name, id)
	b.defs.Write(inner.body.Bytes())
	fmt.Fprintf(&b.defs, "    </%s>\n", name)
}

func writeStops(buf *bytes.Buffer, stops []Stop) {
	for _, s := range stops {
		fmt.Fprintf(buf, `      <stop offset="%s%%" stop-color="%s"`, Num(s.Offset*100), s.Color)
		if s.Opacity > 0 && s.Opacity < 1 {
			fmt.Fprintf(buf, ` stop-opacity="%s"`, Num(s.Opacity))
		}
		buf.WriteString("/>\n")
	}
}

func writeAttrs(buf *bytes.Buffer, attrs Attrs) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, ` %s="%s"`, k, attrs[k])
	}
}

func merge(base, extra Attrs) Attrs {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// Num formats a coordinate with two decimals, trimming trailing zeros.
// Generators route every numeric attribute through it so output stays
// byte-stable across platforms.
func Num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// gradientVector converts an angle in degrees to a unit direction for
// linearGradient endpoints.
func gradientVector(angle float64) (x, y float64) {
	rad := angle * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}
