package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FaceDirection identifies one of the six axis-aligned faces of a voxel.
type FaceDirection int

const (
	Down  FaceDirection = iota // -Y
	Up                         // +Y
	North                      // +Z
	South                      // -Z
	East                       // +X
	West                       // -X

	FaceCount = 6
)

func (d FaceDirection) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "invalid"
	}
}

// Directions returns the six face directions in the fixed order the mesher
// iterates them. Output determinism depends on this order never changing.
func Directions() [FaceCount]FaceDirection {
	return [FaceCount]FaceDirection{Down, Up, North, South, East, West}
}

// Normal returns the outward unit normal of the face.
func (d FaceDirection) Normal() mgl32.Vec3 {
	return faceNormals[d]
}

// Offset returns the unit step from a voxel to its neighbor across the face.
func (d FaceDirection) Offset() (dx, dy, dz int) {
	o := faceOffsets[d]
	return o[0], o[1], o[2]
}

var faceNormals = [FaceCount]mgl32.Vec3{
	Down:  {0, -1, 0},
	Up:    {0, 1, 0},
	North: {0, 0, 1},
	South: {0, 0, -1},
	East:  {1, 0, 0},
	West:  {-1, 0, 0},
}

var faceOffsets = [FaceCount][3]int{
	Down:  {0, -1, 0},
	Up:    {0, 1, 0},
	North: {0, 0, 1},
	South: {0, 0, -1},
	East:  {1, 0, 0},
	West:  {-1, 0, 0},
}

// faceCorners gives the four corners of each face as offsets within the unit
// cube occupied by a voxel, wound counter-clockwise when viewed from outside
// the solid. Triangles are emitted as (0,1,2) and (2,3,0).
var faceCorners = [FaceCount][4][3]float32{
	Down:  {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	Up:    {{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}},
	North: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	South: {{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
	East:  {{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	West:  {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
}

// faceTexCoords spans the [0,1]x[0,1] region once per face, corner order
// matching faceCorners.
var faceTexCoords = [4][2]float32{
	{0, 0}, {1, 0}, {1, 1}, {0, 1},
}
