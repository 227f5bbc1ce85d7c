package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/oliverbestmann/thomson-sphere/geom"
	"github.com/oliverbestmann/thomson-sphere/metrics"
	"github.com/oliverbestmann/thomson-sphere/sphere"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func tetrahedron() *sphere.Mesh {
	return sphere.Rebuild(sphere.Config{Radius: 1}, []geom.Vec3{
		geom.Normalize(geom.V3(1, 1, 1)),
		geom.Normalize(geom.V3(1, -1, -1)),
		geom.Normalize(geom.V3(-1, 1, -1)),
		geom.Normalize(geom.V3(-1, -1, 1)),
	})
}

func TestBuffersConnectivity(t *testing.T) {
	mesh, err := sphere.Build(sphere.Config{N: 20, Radius: 1})
	require.NoError(t, err)

	buffers := NewBuffers(mesh, metrics.ConnectivityQuality)

	require.Len(t, buffers.Positions, 3*20)
	require.Len(t, buffers.Indices, 3*len(mesh.Triangles))
	require.Len(t, buffers.Colors, 4*20)
	require.Equal(t, mesh.Indices(), buffers.Indices)
}

func TestBuffersArea(t *testing.T) {
	mesh, err := sphere.Build(sphere.Config{N: 20, Radius: 1})
	require.NoError(t, err)

	buffers := NewBuffers(mesh, metrics.AreaQuality)

	triangles := len(mesh.Triangles)
	require.Len(t, buffers.Positions, 9*triangles)
	require.Len(t, buffers.Indices, 3*triangles)
	require.Len(t, buffers.Colors, 12*triangles)

	for idx, index := range buffers.Indices {
		require.Equal(t, uint32(idx), index)
	}

	// all three corners of a triangle share its colour
	for tri := 0; tri < triangles; tri++ {
		first := buffers.Colors[tri*12 : tri*12+4]
		require.Equal(t, first, buffers.Colors[tri*12+4:tri*12+8])
		require.Equal(t, first, buffers.Colors[tri*12+8:tri*12+12])
	}
}

func TestRamp(t *testing.T) {
	require.Equal(t, PoorColor, Ramp(0))
	require.Equal(t, GoodColor, Ramp(1))
	require.Equal(t, PoorColor, Ramp(-3))
	require.Equal(t, GoodColor, Ramp(7))

	mid := Ramp(0.5)
	require.Greater(t, mid.G, PoorColor.G)
	require.Less(t, mid.G, GoodColor.G)
}

func TestWriteOBJ(t *testing.T) {
	mesh := tetrahedron()

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, mesh))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+4+4)
	require.Equal(t, "# points 4 triangles 4", lines[0])

	for _, line := range lines[1:5] {
		require.True(t, strings.HasPrefix(line, "v "), line)
		require.Len(t, strings.Fields(line), 4)
	}

	for idx, line := range lines[5:] {
		tri := mesh.Triangles[idx]

		var a, b, c int
		_, err := fmt.Sscanf(line, "f %d %d %d", &a, &b, &c)
		require.NoError(t, err)
		require.Equal(t, [3]int{tri[0] + 1, tri[1] + 1, tri[2] + 1}, [3]int{a, b, c})
	}
}

func TestWriteJSON(t *testing.T) {
	mesh := tetrahedron()
	buffers := NewBuffers(mesh, metrics.ConnectivityQuality)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, buffers))

	var decoded Buffers
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, buffers.Indices, decoded.Indices)
	require.Len(t, decoded.Colors, 16)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteOBJFails(t *testing.T) {
	mesh, err := sphere.Build(sphere.Config{N: 200, Radius: 1}, sphere.WithStrategy(sphere.QuickHullStrategy))
	require.NoError(t, err)

	require.Error(t, WriteOBJ(failingWriter{}, mesh))
}

func TestFanout(t *testing.T) {
	mesh := tetrahedron()

	var expected bytes.Buffer
	require.NoError(t, WriteOBJ(&expected, mesh))

	var first bytes.Buffer
	hash := sha256.New()

	src := Pipe(func(w io.Writer) error { return WriteOBJ(w, mesh) })
	require.NoError(t, Fanout(context.Background(), src, &first, hash))

	require.Equal(t, expected.String(), first.String())

	sum := sha256.Sum256(expected.Bytes())
	require.Equal(t, sum[:], hash.Sum(nil))
}

func TestFanoutWithoutSinks(t *testing.T) {
	src := strings.NewReader("nobody listens")
	require.NoError(t, Fanout(context.Background(), src))
	require.Zero(t, src.Len())
}

func TestFanoutPropagatesErrors(t *testing.T) {
	failure := errors.New("mesh went away")

	src := Pipe(func(w io.Writer) error {
		_, _ = io.WriteString(w, "v 0 0 0\n")
		return failure
	})

	var sink bytes.Buffer
	err := Fanout(context.Background(), src, &sink)
	require.True(t, errors.Is(err, failure))
}
