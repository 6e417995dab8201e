package figure

// Vec3 is a 3-component vector used for position, scale and rotation.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HSL is a color in hue/saturation/lightness space. Hue is in degrees
// [0, 360); saturation and lightness are fractions in [0, 1].
// Derivation fixes S and L so every identicon shares one visual family
// while hue spans the full wheel.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}
