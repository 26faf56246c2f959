// Package objexport writes chunk meshes as Wavefront OBJ, the simplest thing
// a rendering collaborator (or a model viewer) can consume without a GL
// context. Mesh positions stay chunk-local in the buffer; the exporter
// applies the chunk-grid translation the way a renderer would at draw time.
package objexport

import (
	"bufio"
	"fmt"
	"io"

	"voxmesh/internal/meshing"
	"voxmesh/internal/voxel"
)

// DefaultMaterial is the material name referenced by exported faces.
const DefaultMaterial = "voxel"

// Writer streams one or more chunk meshes into a single OBJ document.
type Writer struct {
	w          *bufio.Writer
	vertexBase int // running 0-based vertex offset across meshes
}

// NewWriter wraps w. Call WriteHeader before the first mesh and Flush after
// the last one.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 128*1024)}
}

// WriteHeader emits the mtllib reference and the shared material binding.
func (o *Writer) WriteHeader(mtlLib string) error {
	if mtlLib != "" {
		if _, err := fmt.Fprintf(o.w, "mtllib %s\n", mtlLib); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(o.w, "usemtl %s\n", DefaultMaterial)
	return err
}

// WriteMesh emits one chunk's buffer as an `o chunk_x_y_z` object, translated
// by the chunk coordinate times the chunk dimensions.
func (o *Writer) WriteMesh(coord voxel.ChunkCoord, buf *meshing.MeshBuffer) error {
	if buf.VertexCount() == 0 {
		return nil
	}
	offX := float32(coord.X * voxel.SizeX)
	offY := float32(coord.Y * voxel.SizeY)
	offZ := float32(coord.Z * voxel.SizeZ)

	if _, err := fmt.Fprintf(o.w, "o chunk_%d_%d_%d\n", coord.X, coord.Y, coord.Z); err != nil {
		return err
	}
	n := buf.VertexCount()
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(o.w, "v %.6f %.6f %.6f\n",
			buf.Positions[3*i]+offX, buf.Positions[3*i+1]+offY, buf.Positions[3*i+2]+offZ); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(o.w, "vt %.6f %.6f\n",
			buf.TexCoords[2*i], buf.TexCoords[2*i+1]); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(o.w, "vn %.6f %.6f %.6f\n",
			buf.Normals[3*i], buf.Normals[3*i+1], buf.Normals[3*i+2]); err != nil {
			return err
		}
	}
	for i := 0; i+2 < len(buf.Indices); i += 3 {
		// OBJ indices are 1-based and global across objects.
		a := int(buf.Indices[i]) + o.vertexBase + 1
		b := int(buf.Indices[i+1]) + o.vertexBase + 1
		c := int(buf.Indices[i+2]) + o.vertexBase + 1
		if _, err := fmt.Fprintf(o.w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
			a, a, a, b, b, b, c, c, c); err != nil {
			return err
		}
	}
	o.vertexBase += n
	return nil
}

// Flush writes any buffered output to the underlying writer.
func (o *Writer) Flush() error {
	return o.w.Flush()
}

// WriteMTL emits the companion material library for exported OBJ files.
func WriteMTL(w io.Writer) error {
	_, err := fmt.Fprintf(w, "newmtl %s\nKd 0.8 0.8 0.8\nKa 0.2 0.2 0.2\n", DefaultMaterial)
	return err
}
