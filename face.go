package penrose

// Line widths, in canvas units, used when drawing faces.
const (
	// MergeLineWidth is the width of the line drawn over the shared edge of
	// two half-tiles, in the fill color, to hide the seam between them.
	MergeLineWidth = 2.0

	// OutlineWidth is the width of tile outlines.
	OutlineWidth = 1.0
)

// Face is everything a renderer needs to draw one half-tile.
//
// Renderers fill every face first, drawing Merge in the fill color, and
// only then stroke every Outline so no fill covers an outline.
type Face struct {
	// Vertices are the apex followed by the two base vertices.
	Vertices [3]Point
	// Fill is the interior color.
	Fill RGBA
	// Merge is the edge shared with the mirror half of the same whole tile.
	Merge [2]Point
	// Outline is an open polyline over the two edges that bound the whole tile.
	Outline [3]Point
	// Stroke is the outline color.
	Stroke RGBA
}

// Face returns the render description of t.
func (t HalfTile) Face() Face {
	f := Face{
		Vertices: [3]Point{t.Apex, t.Vertex1, t.Vertex2},
		Fill:     t.Variant.Fill(),
		Stroke:   t.Family().Stroke(),
	}
	if t.Family() == KiteDart {
		f.Merge = [2]Point{t.Apex, t.Vertex2}
		f.Outline = [3]Point{t.Apex, t.Vertex1, t.Vertex2}
	} else {
		f.Merge = [2]Point{t.Vertex1, t.Vertex2}
		f.Outline = [3]Point{t.Vertex1, t.Apex, t.Vertex2}
	}
	return f
}

// Faces converts a generation into render descriptions, preserving order.
func Faces(gen []HalfTile) []Face {
	faces := make([]Face, len(gen))
	for i, t := range gen {
		faces[i] = t.Face()
	}
	return faces
}

// Fill returns the interior color of the variant.
func (v Variant) Fill() RGBA {
	switch v {
	case Kite:
		return KiteFill
	case Dart:
		return DartFill
	case Acute:
		return AcuteFill
	default:
		return ObtuseFill
	}
}

// Stroke returns the outline color of the family.
func (f Family) Stroke() RGBA {
	if f == KiteDart {
		return KiteDartStroke
	}
	return RhombStroke
}
