// SPDX-License-Identifier: MIT

package render

import (
	"sort"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/geo"
)

const fontFamily = "Verdana"

// RenderMap draws cat as a complete SVG document.
//
// Errors: ErrNilCatalogue, ErrBadSettings.
// Complexity: O(B log B + S log S + total route length).
func RenderMap(cat *catalogue.Catalogue, s Settings) (string, error) {
	if cat == nil {
		return "", ErrNilCatalogue
	}
	if err := s.Validate(); err != nil {
		return "", err
	}

	m := newMapper(cat, s)
	doc := &document{}
	m.routeLines(doc)
	m.busLabels(doc)
	m.stopCircles(doc)
	m.stopLabels(doc)

	return doc.String(), nil
}

// mapper holds the sorted drawing order for one render call.
type mapper struct {
	s     Settings
	proj  SphereProjector
	buses []catalogue.Bus  // non-empty buses by name
	stops []catalogue.Stop // served stops by name
	byID  map[int]catalogue.Stop
}

func newMapper(cat *catalogue.Catalogue, s Settings) *mapper {
	m := &mapper{s: s, byID: make(map[int]catalogue.Stop)}

	for _, b := range cat.Buses() {
		if len(b.Stops) == 0 {
			continue
		}
		m.buses = append(m.buses, b)
		for _, id := range b.Stops {
			if _, ok := m.byID[id]; ok {
				continue
			}
			stop, _ := cat.StopByID(id)
			m.byID[id] = stop
			m.stops = append(m.stops, stop)
		}
	}
	sort.Slice(m.buses, func(i, j int) bool { return m.buses[i].Name < m.buses[j].Name })
	sort.Slice(m.stops, func(i, j int) bool { return m.stops[i].Name < m.stops[j].Name })

	points := make([]geo.Coordinates, len(m.stops))
	for i, st := range m.stops {
		points[i] = st.Coordinates
	}
	m.proj = NewSphereProjector(points, s.Width, s.Height, s.Padding)

	return m
}

func (m *mapper) color(i int) Color {
	return m.s.ColorPalette[i%len(m.s.ColorPalette)]
}

func (m *mapper) at(stopID int) Point {
	return m.proj.Project(m.byID[stopID].Coordinates)
}

func (m *mapper) routeLines(doc *document) {
	for i, b := range m.buses {
		line := polyline{pathProps: pathProps{
			fill:        NoneColor,
			stroke:      m.color(i),
			strokeWidth: m.s.LineWidth,
			lineCap:     "round",
			lineJoin:    "round",
		}}
		for _, id := range b.Stops {
			line.points = append(line.points, m.at(id))
		}
		if !b.Circular {
			for k := len(b.Stops) - 2; k >= 0; k-- {
				line.points = append(line.points, m.at(b.Stops[k]))
			}
		}
		doc.add(line)
	}
}

func (m *mapper) busLabels(doc *document) {
	for i, b := range m.buses {
		first, last := b.Stops[0], b.Stops[len(b.Stops)-1]
		m.label(doc, b.Name, m.at(first), m.color(i), true)
		if !b.Circular && first != last {
			m.label(doc, b.Name, m.at(last), m.color(i), true)
		}
	}
}

func (m *mapper) stopCircles(doc *document) {
	for _, st := range m.stops {
		doc.add(circle{
			pathProps: pathProps{fill: "white"},
			center:    m.proj.Project(st.Coordinates),
			radius:    m.s.StopRadius,
		})
	}
}

func (m *mapper) stopLabels(doc *document) {
	for _, st := range m.stops {
		m.label(doc, st.Name, m.proj.Project(st.Coordinates), "black", false)
	}
}

// label adds an underlayer and the label itself; bus labels are bold.
func (m *mapper) label(doc *document, data string, pos Point, fill Color, bus bool) {
	base := text{
		pos:        pos,
		offset:     m.s.StopLabelOffset,
		fontSize:   m.s.StopLabelFontSize,
		fontFamily: fontFamily,
		data:       data,
	}
	if bus {
		base.offset = m.s.BusLabelOffset
		base.fontSize = m.s.BusLabelFontSize
		base.fontWeight = "bold"
	}

	under := base
	under.pathProps = pathProps{
		fill:        m.s.UnderlayerColor,
		stroke:      m.s.UnderlayerColor,
		strokeWidth: m.s.UnderlayerWidth,
		lineCap:     "round",
		lineJoin:    "round",
	}
	top := base
	top.pathProps = pathProps{fill: fill}

	doc.add(under)
	doc.add(top)
}
