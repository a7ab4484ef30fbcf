package penrose

import (
	"math"
	"testing"
)

func TestRhombSeed_Scenario(t *testing.T) {
	tiles := RhombSeed(Pt(400, 250), 30)
	if len(tiles) != 1 {
		t.Fatalf("RhombSeed returned %d tiles, want 1", len(tiles))
	}
	tile := tiles[0]
	if tile.Variant != Acute {
		t.Errorf("variant = %v, want Acute", tile.Variant)
	}

	x := 160 + 30*math.Sin(2*math.Pi/5)
	half := 30 * Phi / 2
	checks := []struct {
		name string
		got  Point
		want Point
	}{
		{"apex", tile.Apex, Pt(160, 250)},
		{"vertex1", tile.Vertex1, Pt(x, 250-half)},
		{"vertex2", tile.Vertex2, Pt(x, 250+half)},
	}
	for _, c := range checks {
		if !c.got.Approx(c.want, 1e-9) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	// Rounded values from the worked example.
	if math.Abs(tile.Vertex1.X-188.53) > 0.01 || math.Abs(tile.Vertex1.Y-240.73) > 0.01 ||
		math.Abs(tile.Vertex2.Y-259.27) > 0.01 {
		t.Errorf("vertices %v, %v do not match (188.53, 240.73) / (188.53, 259.27)", tile.Vertex1, tile.Vertex2)
	}
}

func TestKiteDartSeed_Formulas(t *testing.T) {
	const length = 30.0
	tiles := KiteDartSeed(Pt(400, 250), length)
	if len(tiles) != 1 {
		t.Fatalf("KiteDartSeed returned %d tiles, want 1", len(tiles))
	}
	tile := tiles[0]
	if tile.Variant != Kite {
		t.Errorf("variant = %v, want Kite", tile.Variant)
	}

	cx, cy := 160.0, 100.0
	left, right := cx-length/2, cx+length/2
	midX := left + length*math.Cos(math.Pi/5)
	height := length * math.Sin(math.Pi/5)

	if want := Pt(left, cy+height/2); !tile.Apex.Approx(want, 1e-9) {
		t.Errorf("apex = %v, want %v", tile.Apex, want)
	}
	if want := Pt(midX, cy-height/2); !tile.Vertex1.Approx(want, 1e-9) {
		t.Errorf("vertex1 = %v, want %v", tile.Vertex1, want)
	}
	if want := Pt(right, cy+height/2); !tile.Vertex2.Approx(want, 1e-9) {
		t.Errorf("vertex2 = %v, want %v", tile.Vertex2, want)
	}
}

func TestSeed_Proportions(t *testing.T) {
	const length = 50.0
	for _, f := range []Family{Rhomb, KiteDart} {
		t.Run(f.String(), func(t *testing.T) {
			tile := Seed(f, Pt(640, 360), length)[0]
			if got := tile.Apex.Distance(tile.Vertex1); math.Abs(got-length) > 1e-9 {
				t.Errorf("leg apex-vertex1 = %v, want %v", got, length)
			}
			if got := tile.Apex.Distance(tile.Vertex2); math.Abs(got-length) > 1e-9 {
				t.Errorf("leg apex-vertex2 = %v, want %v", got, length)
			}
			if got := tile.Vertex1.Distance(tile.Vertex2); math.Abs(got-length*Phi) > 1e-9 {
				t.Errorf("base = %v, want %v", got, length*Phi)
			}
		})
	}
}

func TestSeed_CenterSnapping(t *testing.T) {
	// 401 * 2/5 = 160.4 snaps to 160, like 400 does.
	a := RhombSeed(Pt(401, 250), 30)[0]
	b := RhombSeed(Pt(400, 250), 30)[0]
	if a != b {
		t.Errorf("RhombSeed(401, 250) = %+v, want %+v", a, b)
	}
	// The rhomb seed keeps cy unscaled.
	if got := RhombSeed(Pt(400, 251), 30)[0].Apex.Y; got != 251 {
		t.Errorf("apex y = %v, want 251", got)
	}
}
