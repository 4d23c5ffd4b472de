package motion

// Spring presets used across the showcase.
var (
	// Reveal drives the staggered title letters.
	Reveal = SpringParams{Stiffness: 220, Damping: 18, Mass: 1}
	// Tilt smooths card rotation.
	Tilt = SpringParams{Stiffness: 200, Damping: 15, Mass: 1}
	// Unroll opens and closes the lore scrolls.
	Unroll = SpringParams{Stiffness: 140, Damping: 16, Mass: 1}
	// Gate swings the village gate doors.
	Gate = SpringParams{Stiffness: 140, Damping: 14, Mass: 1}
	// Orbit moves the light particles on a hovered card.
	Orbit = SpringParams{Stiffness: 120, Damping: 10, Mass: 0.6}
)
