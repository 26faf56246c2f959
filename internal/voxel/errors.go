package voxel

import "fmt"

// OutOfBoundsError reports a local coordinate outside [0, Size) on at least
// one axis.
type OutOfBoundsError struct {
	X, Y, Z int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("voxel: coordinate (%d, %d, %d) outside chunk bounds %dx%dx%d",
		e.X, e.Y, e.Z, SizeX, SizeY, SizeZ)
}
