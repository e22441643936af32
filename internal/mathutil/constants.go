package mathutil

// Default snapshot camera: a three-quarter view looking slightly down, so
// the top cap and two side faces of every primitive are visible.
const (
	DefaultYaw   = 35.0
	DefaultPitch = 25.0
)

// ViewDefault is YawPitch(DefaultYaw, DefaultPitch).
var ViewDefault = YawPitch(DefaultYaw, DefaultPitch)
