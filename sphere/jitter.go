package sphere

import (
	"math/rand/v2"

	"github.com/furui/fastnoiselite-go"
	"github.com/oliverbestmann/thomson-sphere/geom"
)

// axisOffset decorrelates the three noise samples taken per point.
const axisOffset = 31.7

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func newNoise(seed uint64) *fastnoiselite.FastNoiseLite {
	rng := RandWithSeed(seed)

	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = rng.Int32()
	noise.Frequency = 2

	return noise
}

// jitter displaces the unit directions by noise scaled with amount and puts
// them back on the unit sphere.
func jitter(directions []geom.Vec3, amount float64, seed uint64) {
	type F = fastnoiselite.FNLfloat

	noise := newNoise(seed)

	for idx, dir := range directions {
		offset := geom.V3(
			float64(noise.GetNoise3D(F(dir.X), F(dir.Y), F(dir.Z))),
			float64(noise.GetNoise3D(F(dir.X+axisOffset), F(dir.Y), F(dir.Z))),
			float64(noise.GetNoise3D(F(dir.X), F(dir.Y+axisOffset), F(dir.Z))),
		)

		moved := geom.Normalize(dir.Add(offset.Mul(amount)))
		if moved == (geom.Vec3{}) {
			continue
		}

		directions[idx] = moved
	}
}
