package render

// Base layout at a pixel-density scale of 1 (96 dpi).
const (
	BaseMargin      = 13.0
	BaseTextOffsetY = 7.0
	BaseBarHeight   = 2.0

	BaseFrameWidth  = 180
	BaseFrameHeight = 35
	BaseEdgeOffset  = 25
)

// Geometry holds the layout constants for one pixel-density scale.
type Geometry struct {
	Scale       float64
	Margin      float64 // before and after the text
	TextOffsetY float64 // top of the text
	BarHeight   float64

	FrameWidth  int // initial frame size
	FrameHeight int
	EdgeOffset  int // distance from the screen corner
}

// NewGeometry scales the base layout. A non-positive scale is treated as 1.
func NewGeometry(scale float64) Geometry {
	if scale <= 0 {
		scale = 1
	}
	return Geometry{
		Scale:       scale,
		Margin:      BaseMargin * scale,
		TextOffsetY: BaseTextOffsetY * scale,
		BarHeight:   BaseBarHeight * scale,
		FrameWidth:  Scaled(BaseFrameWidth, scale),
		FrameHeight: Scaled(BaseFrameHeight, scale),
		EdgeOffset:  Scaled(BaseEdgeOffset, scale),
	}
}

// Scaled truncates v*scale to whole pixels.
func Scaled(v int, scale float64) int {
	return int(float64(v) * scale)
}
