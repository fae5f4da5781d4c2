package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGeometry(t *testing.T) {
	g := NewGeometry(1)
	assert.Equal(t, Geometry{
		Scale:       1,
		Margin:      13,
		TextOffsetY: 7,
		BarHeight:   2,
		FrameWidth:  180,
		FrameHeight: 35,
		EdgeOffset:  25,
	}, g)
}

func TestNewGeometry_Scaled(t *testing.T) {
	g := NewGeometry(1.5)

	assert.Equal(t, 19.5, g.Margin)
	assert.Equal(t, 10.5, g.TextOffsetY)
	assert.Equal(t, 3.0, g.BarHeight)
	assert.Equal(t, 270, g.FrameWidth)
	assert.Equal(t, 52, g.FrameHeight, "truncated like the window size")
	assert.Equal(t, 37, g.EdgeOffset)
}

func TestNewGeometry_NonPositiveScale(t *testing.T) {
	assert.Equal(t, NewGeometry(1), NewGeometry(0))
	assert.Equal(t, NewGeometry(1), NewGeometry(-2))
}
