// Package svg renders layout engine output as standalone SVG documents.
// It consumes only the engines' public geometry; it never recomputes
// positions.
package svg

import (
	"fmt"
	"strings"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
)

// Renderer draws star-map and metro-map documents for a fixed canvas.
type Renderer struct {
	canvas     entities.CanvasSize
	background string
	text       string
}

// NewRenderer creates a renderer for the given canvas.
func NewRenderer(canvas entities.CanvasSize) *Renderer {
	return &Renderer{
		canvas:     canvas,
		background: "#0b132b",
		text:       "#e0e1dd",
	}
}

// categoryColors maps connection categories to stroke colors. Categories
// outside the map fall back to a neutral gray.
var categoryColors = map[string]string{
	"Reality":   "#e63946",
	"Value":     "#2a9d8f",
	"Knowledge": "#457b9d",
	"Society":   "#f4a261",
	"Reason":    "#9b5de5",
	"Existence": "#6d6875",
}

// eraColors maps eras to star fill colors.
var eraColors = map[entities.Era]string{
	entities.EraAncient:       "#ffd166",
	entities.EraMedieval:      "#ef476f",
	entities.EraEnlightenment: "#06d6a0",
	entities.EraNineteenth:    "#118ab2",
	entities.EraContemporary:  "#c77dff",
}

// categoryColor returns the stroke color for a connection category.
func categoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return "#8d99ae"
}

// StarMap renders the constellation layout: connection lines underneath,
// one star per philosopher on top, era-colored, with title labels.
func (r *Renderer) StarMap(phils []entities.Philosopher, positions []entities.Position, conns []entities.Connection) string {
	var svg strings.Builder
	r.writeHeader(&svg)

	at := make(map[string]entities.Position, len(positions))
	for _, pos := range positions {
		at[pos.EntityID] = pos
	}

	for _, conn := range conns {
		from, okFrom := at[conn.From]
		to, okTo := at[conn.To]
		if !okFrom || !okTo {
			continue
		}
		dash := ""
		if conn.Kind == entities.ConnectionInfluence {
			dash = ` stroke-dasharray="4 3"`
		}
		fmt.Fprintf(&svg, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1" opacity="0.5"%s/>`+"\n",
			from.X, from.Y, to.X, to.Y, categoryColor(conn.Category), dash)
	}

	byID := make(map[string]*entities.Philosopher, len(phils))
	for i := range phils {
		byID[phils[i].ID] = &phils[i]
	}

	for _, pos := range positions {
		p, ok := byID[pos.EntityID]
		if !ok {
			continue
		}
		radius := 4.0
		if p.Type == entities.EntityTypeMajor {
			radius = 6.0
		}
		fill, ok := eraColors[p.Era]
		if !ok {
			fill = r.text
		}
		fmt.Fprintf(&svg, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", pos.X, pos.Y, radius, fill)
		fmt.Fprintf(&svg, `<text x="%.1f" y="%.1f" class="star-label">%s</text>`+"\n",
			pos.X, pos.Y-radius-4, escape(p.Title))
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// MetroMap renders the transit layout: line paths, station markers
// (interchanges drawn hollow and larger), station labels, and a line
// legend down the left edge.
func (r *Renderer) MetroMap(phils []entities.Philosopher, layout entities.MetroLayout, lines []entities.LineDecl) string {
	var svg strings.Builder
	r.writeHeader(&svg)

	for _, line := range lines {
		geometry, ok := layout.Lines[line.Concept]
		if !ok {
			continue
		}
		fmt.Fprintf(&svg, `<path d="%s" stroke="%s" stroke-width="4" fill="none"/>`+"\n",
			geometry.Path, geometry.Color)
		fmt.Fprintf(&svg, `<text x="8" y="%.1f" class="line-label" fill="%s">%s</text>`+"\n",
			geometry.BaseY-8, geometry.Color, escape(geometry.Label))
	}

	byID := make(map[string]*entities.Philosopher, len(phils))
	for i := range phils {
		byID[phils[i].ID] = &phils[i]
	}

	for _, st := range layout.Stations {
		color := "#ffffff"
		if geometry, ok := layout.Lines[st.Line]; ok {
			color = geometry.Color
		}
		if st.IsInterchange {
			fmt.Fprintf(&svg, `<circle cx="%.1f" cy="%.1f" r="7" fill="%s" stroke="%s" stroke-width="3"/>`+"\n",
				st.X, st.Y, r.background, r.text)
		} else {
			fmt.Fprintf(&svg, `<circle cx="%.1f" cy="%.1f" r="5" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
				st.X, st.Y, r.background, color)
		}
		if p, ok := byID[st.EntityID]; ok {
			fmt.Fprintf(&svg, `<text x="%.1f" y="%.1f" class="station-label">%s</text>`+"\n",
				st.X+9, st.Y-9, escape(p.Title))
		}
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// writeHeader emits the document prolog, background, and style block.
func (r *Renderer) writeHeader(svg *strings.Builder) {
	fmt.Fprintf(svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%.0f" height="%.0f" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.star-label { font-family: Georgia, serif; font-size: 11px; fill: %s; text-anchor: middle; }
.station-label { font-family: Georgia, serif; font-size: 11px; fill: %s; }
.line-label { font-family: Georgia, serif; font-size: 12px; font-weight: bold; }
</style>
</defs>
`, r.canvas.Width, r.canvas.Height, r.background, r.text, r.text)
}

// escape replaces characters with special meaning in SVG text nodes.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
