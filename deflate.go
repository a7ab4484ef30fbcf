package penrose

// Deflate returns the half-tiles that replace t one level deeper.
//
// Children come back in a fixed order per variant:
//
//	Kite   -> Dart, Kite, Kite
//	Dart   -> Kite, Dart
//	Acute  -> Obtuse, Acute
//	Obtuse -> Obtuse, Acute, Obtuse
//
// The order only affects paint order of overlapping fills.
func (t HalfTile) Deflate() []HalfTile {
	return t.appendChildren(make([]HalfTile, 0, 3))
}

// appendChildren appends the deflation of t to dst.
func (t HalfTile) appendChildren(dst []HalfTile) []HalfTile {
	a, v1, v2 := t.Apex, t.Vertex1, t.Vertex2

	switch t.Variant {
	case Kite:
		p1 := GoldenPoint(v1, a)
		p2 := GoldenPoint(a, v2)
		return append(dst,
			NewHalfTile(Dart, p1, p2, a),
			NewHalfTile(Kite, v1, p1, p2),
			NewHalfTile(Kite, v1, v2, p2),
		)
	case Dart:
		p := GoldenPoint(v2, v1)
		return append(dst,
			NewHalfTile(Kite, v2, p, a),
			NewHalfTile(Dart, p, a, v1),
		)
	case Acute:
		p := GoldenPoint(a, v1)
		return append(dst,
			NewHalfTile(Obtuse, p, v2, a),
			NewHalfTile(Acute, v2, p, v1),
		)
	case Obtuse:
		p1 := GoldenPoint(v1, a)
		p2 := GoldenPoint(v1, v2)
		return append(dst,
			NewHalfTile(Obtuse, p1, p2, v1),
			NewHalfTile(Acute, p2, p1, a),
			NewHalfTile(Obtuse, p2, v2, a),
		)
	}
	return dst
}

// DeflateAll deflates every tile of a generation and returns the next one.
// Children of each tile stay together, in the order the tiles appear in gen.
// gen itself is left untouched.
func DeflateAll(gen []HalfTile) []HalfTile {
	// Kites and obtuse triangles split in three, the rest in two.
	next := make([]HalfTile, 0, len(gen)*3)
	for _, t := range gen {
		next = t.appendChildren(next)
	}
	return next
}

// Counts tallies the tiles of a generation by variant.
func Counts(gen []HalfTile) map[Variant]int {
	counts := make(map[Variant]int, 4)
	for _, t := range gen {
		counts[t.Variant]++
	}
	return counts
}
