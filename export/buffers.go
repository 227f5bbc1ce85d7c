// Package export turns a mesh into the flat buffers and files consumed by
// renderers and other tools.
package export

import (
	"image/color"

	"github.com/fogleman/ease"
	"github.com/oliverbestmann/thomson-sphere/metrics"
	"github.com/oliverbestmann/thomson-sphere/sphere"
	"github.com/quasilyte/gmath"
)

var (
	PoorColor = color.NRGBA{R: 0xd0, G: 0x3a, B: 0x2f, A: 0xff}
	GoodColor = color.NRGBA{R: 0x3f, G: 0xa3, B: 0x4d, A: 0xff}
)

// Buffers is the mesh in the layout a renderer uploads: three floats per
// vertex position, three indices per triangle and one RGBA colour per
// vertex.
type Buffers struct {
	Positions []float32 `json:"positions"`
	Indices   []uint32  `json:"indices"`
	Colors    []float32 `json:"colors"`
}

// NewBuffers lays out the mesh coloured by the given metric. Vertices are
// shared for ConnectivityQuality. For AreaQuality every triangle gets its own
// three vertices, so the whole triangle carries its colour.
func NewBuffers(mesh *sphere.Mesh, mode metrics.Mode) Buffers {
	values := metrics.Compute(mesh, mode)

	if mode == metrics.ConnectivityQuality {
		colors := make([]float32, 0, len(values)*4)
		for _, value := range values {
			colors = appendColor(colors, Ramp(value))
		}

		return Buffers{
			Positions: mesh.Positions(),
			Indices:   mesh.Indices(),
			Colors:    colors,
		}
	}

	buffers := Buffers{
		Positions: make([]float32, 0, len(mesh.Triangles)*9),
		Indices:   make([]uint32, 0, len(mesh.Triangles)*3),
		Colors:    make([]float32, 0, len(mesh.Triangles)*12),
	}

	for idx, t := range mesh.Triangles {
		c := Ramp(values[idx])

		for _, v := range t {
			p := mesh.Points[v]

			buffers.Indices = append(buffers.Indices, uint32(len(buffers.Positions)/3))
			buffers.Positions = append(buffers.Positions, float32(p.X), float32(p.Y), float32(p.Z))
			buffers.Colors = appendColor(buffers.Colors, c)
		}
	}

	return buffers
}

// Ramp maps a quality value in [0, 1] to a colour between PoorColor and
// GoodColor.
func Ramp(quality float64) color.NRGBA {
	t := ease.OutQuad(gmath.Clamp(quality, 0, 1))

	channel := func(from, to uint8) uint8 {
		return uint8(gmath.Lerp(float64(from), float64(to), t) + 0.5)
	}

	return color.NRGBA{
		R: channel(PoorColor.R, GoodColor.R),
		G: channel(PoorColor.G, GoodColor.G),
		B: channel(PoorColor.B, GoodColor.B),
		A: 0xff,
	}
}

func appendColor(colors []float32, c color.NRGBA) []float32 {
	return append(colors,
		float32(c.R)/0xff,
		float32(c.G)/0xff,
		float32(c.B)/0xff,
		float32(c.A)/0xff,
	)
}
