package seedicon

// Vec3 is a 3-component vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HSL is a color in HSL space. H is in degrees, S and L in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Primitive is one derived scene element of an identicon.
type Primitive struct {
	Shape     string  `json:"shape"`
	Position  Vec3    `json:"position"`
	Scale     Vec3    `json:"scale"`
	Rotation  Vec3    `json:"rotation"`
	Color     HSL     `json:"color"`
	Opacity   float64 `json:"opacity"`
	Wireframe bool    `json:"wireframe"`
}

// Mesh is a sculpted face mesh: vertex positions plus triangle indices.
type Mesh struct {
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][3]int     `json:"faces"`
}
