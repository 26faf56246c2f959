package voxel

// Material tags the contents of a single voxel cell. Air is the zero value:
// no geometry, fully transparent, never occludes a neighboring face.
type Material uint16

const (
	Air Material = iota
	Stone
	Dirt
	Grass
	Bedrock
)

// Solid reports whether the material occludes adjacent faces.
func (m Material) Solid() bool {
	return m != Air
}

func (m Material) String() string {
	switch m {
	case Air:
		return "air"
	case Stone:
		return "stone"
	case Dirt:
		return "dirt"
	case Grass:
		return "grass"
	case Bedrock:
		return "bedrock"
	default:
		return "unknown"
	}
}
