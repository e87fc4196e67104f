package constant

// Sentinel
const (
	// SentinelPosition is the far off-screen coordinate retired entities are parked at
	SentinelPosition float32 = 1000.0
)

// Player Motion
const (
	// PlayerHorizontalSpeed is the initial x velocity while an arrow key is held
	PlayerHorizontalSpeed float32 = 0.5

	// PlayerHorizontalAccel is the x acceleration while an arrow key is held
	PlayerHorizontalAccel float32 = 1.8

	// PlayerVerticalSpeed is the initial y velocity while an arrow key is held
	PlayerVerticalSpeed float32 = 0.5

	// PlayerVerticalAccel is the y acceleration while an arrow key is held
	PlayerVerticalAccel float32 = 1.2
)

// Weapon
const (
	// FireSlot is the timed action slot used by the held fire key
	FireSlot = 0

	// FireInterval is the auto-fire period in seconds while fire is held
	FireInterval float32 = 0.150

	// ProjectileOffsetX is the horizontal distance of each cannon from the player center
	ProjectileOffsetX float32 = 0.062

	// ProjectileOffsetY is the vertical distance of the cannons above the player center
	ProjectileOffsetY float32 = 0.125

	// ProjectileSpriteCorrection nudges the left projectile to line up with the sprite
	ProjectileSpriteCorrection float32 = 0.005
)

// Behavior Defaults
const (
	// BounceExtent is the default half-size of the bounce box
	BounceExtent float32 = 0.03
)

// Debug Overlay
const (
	// FPSAveragePeriod is the window in seconds the FPS counter averages over
	FPSAveragePeriod float32 = 0.3
)
