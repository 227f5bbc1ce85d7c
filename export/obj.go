package export

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"

	"github.com/oliverbestmann/thomson-sphere/sphere"
	"github.com/pkg/errors"
)

// WriteOBJ writes the mesh as a Wavefront OBJ file.
func WriteOBJ(w io.Writer, mesh *sphere.Mesh) error {
	bw := bufio.NewWriter(w)

	var line []byte

	line = append(line[:0], "# points "...)
	line = strconv.AppendInt(line, int64(len(mesh.Points)), 10)
	line = append(line, " triangles "...)
	line = strconv.AppendInt(line, int64(len(mesh.Triangles)), 10)
	line = append(line, '\n')
	if _, err := bw.Write(line); err != nil {
		return errors.Wrap(err, "write header")
	}

	for _, p := range mesh.Points {
		line = append(line[:0], 'v')
		for _, c := range [3]float64{p.X, p.Y, p.Z} {
			line = append(line, ' ')
			line = strconv.AppendFloat(line, c, 'g', -1, 64)
		}
		line = append(line, '\n')

		if _, err := bw.Write(line); err != nil {
			return errors.Wrap(err, "write vertex")
		}
	}

	for _, t := range mesh.Triangles {
		line = append(line[:0], 'f')
		for _, v := range t {
			// obj indices start at one
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(v+1), 10)
		}
		line = append(line, '\n')

		if _, err := bw.Write(line); err != nil {
			return errors.Wrap(err, "write face")
		}
	}

	return errors.Wrap(bw.Flush(), "flush obj")
}

// WriteJSON writes the buffers as a single JSON document.
func WriteJSON(w io.Writer, buffers Buffers) error {
	enc := json.NewEncoder(w)
	return errors.Wrap(enc.Encode(buffers), "encode buffers")
}
