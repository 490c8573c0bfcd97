package placement_test

import (
	"testing"

	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceField_CentresBoxOnClick(t *testing.T) {
	page := placement.Rect{Width: 800, Height: 1000}
	box, ok := placement.DefaultSize(model.FieldSignature)
	require.True(t, ok)

	ratio, ok := placement.PlaceField(placement.Point{X: 100, Y: 200}, page, box)

	require.True(t, ok)
	assert.InDelta(t, 25.0/800, ratio.X, 1e-12)
	assert.InDelta(t, 175.0/1000, ratio.Y, 1e-12)
}

func TestPlaceField_ClampsAtEdges(t *testing.T) {
	page := placement.Rect{Width: 800, Height: 1000}
	box := placement.Size{Width: 150, Height: 50}

	tests := []struct {
		name  string
		click placement.Point
		wantX float64
		wantY float64
	}{
		{"top left corner", placement.Point{X: 0, Y: 0}, 0, 0},
		{"bottom right corner", placement.Point{X: 800, Y: 1000}, 650.0 / 800, 950.0 / 1000},
		{"right edge", placement.Point{X: 790, Y: 500}, 650.0 / 800, 475.0 / 1000},
		{"outside negative", placement.Point{X: -40, Y: -10}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ratio, ok := placement.PlaceField(tc.click, page, box)
			require.True(t, ok)
			assert.InDelta(t, tc.wantX, ratio.X, 1e-12)
			assert.InDelta(t, tc.wantY, ratio.Y, 1e-12)
		})
	}
}

func TestPlaceField_BoxLargerThanPagePinsToOrigin(t *testing.T) {
	ratio, ok := placement.PlaceField(placement.Point{X: 50, Y: 10}, placement.Rect{Width: 100, Height: 20}, placement.Size{Width: 150, Height: 50})

	require.True(t, ok)
	assert.Equal(t, 0.0, ratio.X)
	assert.Equal(t, 0.0, ratio.Y)
}

func TestPlaceField_UnknownPage(t *testing.T) {
	_, ok := placement.PlaceField(placement.Point{X: 10, Y: 10}, placement.Rect{}, placement.Size{Width: 150, Height: 50})
	assert.False(t, ok)

	_, ok = placement.PlaceField(placement.Point{X: 10, Y: 10}, placement.Rect{Width: 800, Height: -1}, placement.Size{Width: 150, Height: 50})
	assert.False(t, ok)
}

func TestResolveBox_StaysInsidePage(t *testing.T) {
	page := placement.Rect{Width: 612, Height: 792}

	for _, size := range []placement.Size{{150, 50}, {120, 24}, {150, 28}, {611, 791}} {
		for x := 0.0; x <= page.Width; x += 37 {
			for y := 0.0; y <= page.Height; y += 41 {
				ratio, ok := placement.PlaceField(placement.Point{X: x, Y: y}, page, size)
				require.True(t, ok)

				box := placement.ResolveBox(placement.Placed{XRatio: ratio.X, YRatio: ratio.Y, Width: size.Width, Height: size.Height}, page)

				assert.GreaterOrEqual(t, box.Left, 0.0)
				assert.GreaterOrEqual(t, box.Top, 0.0)
				assert.LessOrEqual(t, box.Left, page.Width-size.Width+1e-9)
				assert.LessOrEqual(t, box.Top, page.Height-size.Height+1e-9)
				assert.GreaterOrEqual(t, ratio.X, 0.0)
				assert.LessOrEqual(t, ratio.X, 1.0)
				assert.GreaterOrEqual(t, ratio.Y, 0.0)
				assert.LessOrEqual(t, ratio.Y, 1.0)
			}
		}
	}
}

func TestResolveBox_ScalesWithPage(t *testing.T) {
	page := placement.Rect{Width: 800, Height: 1000}
	size := placement.Size{Width: 120, Height: 24}

	ratio, ok := placement.PlaceField(placement.Point{X: 333, Y: 617}, page, size)
	require.True(t, ok)
	placed := placement.Placed{XRatio: ratio.X, YRatio: ratio.Y, Width: size.Width, Height: size.Height}

	original := placement.ResolveBox(placed, page)
	doubled := placement.ResolveBox(placed, page.Scale(2))

	assert.Equal(t, original.Left*2, doubled.Left)
	assert.Equal(t, original.Top*2, doubled.Top)
	assert.InDelta(t, 333-60.0, original.Left, 1e-9)
	assert.InDelta(t, 617-12.0, original.Top, 1e-9)
	// box size is kept in placement pixels
	assert.Equal(t, size.Width, doubled.Width)
	assert.Equal(t, size.Height, doubled.Height)
}

func TestDefaultSize(t *testing.T) {
	s, ok := placement.DefaultSize(model.FieldDate)
	require.True(t, ok)
	assert.Equal(t, placement.Size{Width: 120, Height: 24}, s)

	s, ok = placement.DefaultSize(model.FieldText)
	require.True(t, ok)
	assert.Equal(t, placement.Size{Width: 150, Height: 28}, s)

	_, ok = placement.DefaultSize("checkbox")
	assert.False(t, ok)
}

func TestGeometryProviders(t *testing.T) {
	static := placement.StaticGeometry{1: {Width: 800, Height: 1000}, 2: {}}

	r, ok := static.PageRect(1)
	assert.True(t, ok)
	assert.Equal(t, placement.Rect{Width: 800, Height: 1000}, r)

	_, ok = static.PageRect(2)
	assert.False(t, ok, "unmeasured page")
	_, ok = static.PageRect(3)
	assert.False(t, ok)

	scaled := placement.ScaledGeometry{Pages: []placement.Rect{{Width: 612, Height: 792}}, Zoom: 1.5}
	r, ok = scaled.PageRect(1)
	assert.True(t, ok)
	assert.Equal(t, placement.Rect{Width: 918, Height: 1188}, r)

	_, ok = scaled.PageRect(0)
	assert.False(t, ok)
	_, ok = scaled.PageRect(2)
	assert.False(t, ok)
}
