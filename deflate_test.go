package penrose

import (
	"math"
	"slices"
	"testing"
)

// sampleTile returns a seed-shaped tile of the given variant.
func sampleTile(v Variant) HalfTile {
	a, v1, v2 := Pt(100, 200), Pt(140, 170), Pt(140, 230)
	return NewHalfTile(v, a, v1, v2)
}

func variants(gen []HalfTile) []Variant {
	vs := make([]Variant, len(gen))
	for i, t := range gen {
		vs[i] = t.Variant
	}
	return vs
}

func TestDeflate_ChildVariants(t *testing.T) {
	tests := []struct {
		v    Variant
		want []Variant
	}{
		{Kite, []Variant{Dart, Kite, Kite}},
		{Dart, []Variant{Kite, Dart}},
		{Acute, []Variant{Obtuse, Acute}},
		{Obtuse, []Variant{Obtuse, Acute, Obtuse}},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			got := variants(sampleTile(tt.v).Deflate())
			if !slices.Equal(got, tt.want) {
				t.Errorf("%v.Deflate() variants = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestDeflate_ChildVertices(t *testing.T) {
	a, v1, v2 := Pt(0, 0), Pt(10, 4), Pt(3, 12)

	t.Run("Kite", func(t *testing.T) {
		p1, p2 := GoldenPoint(v1, a), GoldenPoint(a, v2)
		want := []HalfTile{
			NewHalfTile(Dart, p1, p2, a),
			NewHalfTile(Kite, v1, p1, p2),
			NewHalfTile(Kite, v1, v2, p2),
		}
		got := NewHalfTile(Kite, a, v1, v2).Deflate()
		if !slices.Equal(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("Dart", func(t *testing.T) {
		p := GoldenPoint(v2, v1)
		want := []HalfTile{
			NewHalfTile(Kite, v2, p, a),
			NewHalfTile(Dart, p, a, v1),
		}
		got := NewHalfTile(Dart, a, v1, v2).Deflate()
		if !slices.Equal(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("Acute", func(t *testing.T) {
		p := GoldenPoint(a, v1)
		want := []HalfTile{
			NewHalfTile(Obtuse, p, v2, a),
			NewHalfTile(Acute, v2, p, v1),
		}
		got := NewHalfTile(Acute, a, v1, v2).Deflate()
		if !slices.Equal(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("Obtuse", func(t *testing.T) {
		p1, p2 := GoldenPoint(v1, a), GoldenPoint(v1, v2)
		want := []HalfTile{
			NewHalfTile(Obtuse, p1, p2, v1),
			NewHalfTile(Acute, p2, p1, a),
			NewHalfTile(Obtuse, p2, v2, a),
		}
		got := NewHalfTile(Obtuse, a, v1, v2).Deflate()
		if !slices.Equal(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})
}

func TestDeflate_PreservesArea(t *testing.T) {
	for _, v := range []Variant{Kite, Dart, Acute, Obtuse} {
		t.Run(v.String(), func(t *testing.T) {
			parent := sampleTile(v)
			var sum float64
			for _, c := range parent.Deflate() {
				if math.Abs(c.Area()) < 1e-9 {
					t.Errorf("degenerate child %+v", c)
				}
				sum += math.Abs(c.Area())
			}
			if want := math.Abs(parent.Area()); math.Abs(sum-want) > 1e-9 {
				t.Errorf("children cover area %v, want %v", sum, want)
			}
		})
	}
}

func TestDeflateAll_Order(t *testing.T) {
	gen := []HalfTile{sampleTile(Acute), sampleTile(Kite)}
	orig := slices.Clone(gen)

	next := DeflateAll(gen)

	want := append(gen[0].Deflate(), gen[1].Deflate()...)
	if !slices.Equal(next, want) {
		t.Errorf("DeflateAll = %v, want children concatenated in generation order", variants(next))
	}
	if !slices.Equal(gen, orig) {
		t.Error("DeflateAll modified its input")
	}
}

func TestDeflateAll_Empty(t *testing.T) {
	if got := DeflateAll(nil); len(got) != 0 {
		t.Errorf("DeflateAll(nil) = %v, want empty", got)
	}
}

func TestDeflateAll_Growth(t *testing.T) {
	tests := []struct {
		name string
		seed Variant
		// expected tally, indexed by depth
		want []map[Variant]int
	}{
		{
			name: "rhomb",
			seed: Acute,
			want: []map[Variant]int{
				{Acute: 1},
				{Obtuse: 1, Acute: 1},
				{Obtuse: 3, Acute: 2},
				{Obtuse: 8, Acute: 5},
				{Obtuse: 21, Acute: 13},
			},
		},
		{
			name: "kite and dart",
			seed: Kite,
			want: []map[Variant]int{
				{Kite: 1},
				{Kite: 2, Dart: 1},
				{Kite: 5, Dart: 3},
				{Kite: 13, Dart: 8},
				{Kite: 34, Dart: 21},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := []HalfTile{sampleTile(tt.seed)}
			for depth, want := range tt.want {
				got := Counts(gen)
				for _, v := range []Variant{Kite, Dart, Acute, Obtuse} {
					if got[v] != want[v] {
						t.Errorf("depth %d: %d %v, want %d", depth, got[v], v, want[v])
					}
				}
				gen = DeflateAll(gen)
			}
		})
	}
}

func TestDeflate_UnknownVariant(t *testing.T) {
	tile := NewHalfTile(Variant(42), Pt(0, 0), Pt(1, 0), Pt(0, 1))
	if got := tile.Deflate(); len(got) != 0 {
		t.Errorf("Deflate() of unknown variant = %v, want no children", got)
	}
}

func BenchmarkDeflateAll(b *testing.B) {
	gen := []HalfTile{sampleTile(Kite)}
	for range 10 {
		gen = DeflateAll(gen)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = DeflateAll(gen)
	}
}
