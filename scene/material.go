package scene

// Material is a shared surface appearance descriptor. Materials are
// created once at model build time and referenced by any number of
// meshes; they are never cloned or mutated afterwards.
type Material struct {
	// Name identifies the material for debugging and tests.
	Name string
	// Color is the base color as a hex string, e.g. "#b87333".
	Color string
	// Roughness in [0,1]. 0 is a polished surface.
	Roughness float64
	// Metalness in [0,1]. Drives the specular highlight strength.
	Metalness float64
}
