// SPDX-License-Identifier: MIT

package render

import "strings"

// element is one SVG node that can write itself.
type element interface {
	write(b *strings.Builder)
}

// pathProps are the optional presentation attributes shared by all elements.
// Zero values are omitted from the output.
type pathProps struct {
	fill        Color
	stroke      Color
	strokeWidth float64
	lineCap     string
	lineJoin    string
}

func (p pathProps) write(b *strings.Builder) {
	if p.fill != "" {
		attr(b, "fill", string(p.fill))
	}
	if p.stroke != "" {
		attr(b, "stroke", string(p.stroke))
	}
	if p.strokeWidth != 0 {
		attr(b, "stroke-width", formatNumber(p.strokeWidth))
	}
	if p.lineCap != "" {
		attr(b, "stroke-linecap", p.lineCap)
	}
	if p.lineJoin != "" {
		attr(b, "stroke-linejoin", p.lineJoin)
	}
}

type circle struct {
	pathProps
	center Point
	radius float64
}

func (c circle) write(b *strings.Builder) {
	b.WriteString("<circle")
	attr(b, "cx", formatNumber(c.center.X))
	attr(b, "cy", formatNumber(c.center.Y))
	attr(b, "r", formatNumber(c.radius))
	c.pathProps.write(b)
	b.WriteString("/>")
}

type polyline struct {
	pathProps
	points []Point
}

func (p polyline) write(b *strings.Builder) {
	b.WriteString(`<polyline points="`)
	for i, pt := range p.points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(pt.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(pt.Y))
	}
	b.WriteByte('"')
	p.pathProps.write(b)
	b.WriteString("/>")
}

type text struct {
	pathProps
	pos        Point
	offset     Offset
	fontSize   int
	fontFamily string
	fontWeight string
	data       string
}

func (t text) write(b *strings.Builder) {
	b.WriteString("<text")
	t.pathProps.write(b)
	attr(b, "x", formatNumber(t.pos.X))
	attr(b, "y", formatNumber(t.pos.Y))
	attr(b, "dx", formatNumber(t.offset[0]))
	attr(b, "dy", formatNumber(t.offset[1]))
	attr(b, "font-size", formatNumber(float64(t.fontSize)))
	if t.fontFamily != "" {
		attr(b, "font-family", t.fontFamily)
	}
	if t.fontWeight != "" {
		attr(b, "font-weight", t.fontWeight)
	}
	b.WriteByte('>')
	b.WriteString(textEscaper.Replace(t.data))
	b.WriteString("</text>")
}

var textEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`"`, "&quot;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
)

func attr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteByte('"')
}

// document is an ordered list of elements.
type document struct {
	elements []element
}

func (d *document) add(e element) { d.elements = append(d.elements, e) }

func (d *document) String() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>` + "\n")
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n")
	for _, e := range d.elements {
		b.WriteString("  ")
		e.write(&b)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")

	return b.String()
}
