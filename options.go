package penrose

// Defaults used by New.
const (
	DefaultBaseLength = 30.0
	DefaultWidth      = 800
	DefaultHeight     = 500
)

// Option configures a Snapshot during creation.
//
// Example:
//
//	// Rhomb tiling, depth 0, on an 800x500 canvas
//	s := penrose.New()
//
//	// Kite and dart tiling five levels deep on a larger canvas
//	s := penrose.New(
//	    penrose.WithFamily(penrose.KiteDart),
//	    penrose.WithDepth(5),
//	    penrose.WithCanvasSize(1280, 800),
//	)
type Option func(*options)

// options holds optional configuration for Snapshot creation.
type options struct {
	family     Family
	depth      int
	baseLength float64
	width      int
	height     int
}

// defaultOptions returns the default snapshot options.
func defaultOptions() options {
	return options{
		family:     Rhomb,
		depth:      0,
		baseLength: DefaultBaseLength,
		width:      DefaultWidth,
		height:     DefaultHeight,
	}
}

// WithFamily selects the tiling family.
func WithFamily(f Family) Option {
	return func(o *options) {
		o.family = f
	}
}

// WithDepth sets the number of deflations. Negative values are treated as 0.
func WithDepth(depth int) Option {
	return func(o *options) {
		o.depth = max(depth, 0)
	}
}

// WithBaseLength sets the edge length the final tiling is scaled to.
// Non-positive lengths are ignored.
func WithBaseLength(length float64) Option {
	return func(o *options) {
		if length > 0 {
			o.baseLength = length
		}
	}
}

// WithCanvasSize sets the canvas the tiling is centered on.
// Non-positive dimensions are ignored.
func WithCanvasSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}
