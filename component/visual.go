package component

// MeshHandle and MaterialHandle are opaque references into the rendering catalog
// Simulation never interprets them
type (
	MeshHandle     uint32
	MaterialHandle uint32
)

// VisualComponent pairs a mesh with a material for the placement sink
type VisualComponent struct {
	Mesh     MeshHandle
	Material MaterialHandle
}
