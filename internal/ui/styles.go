package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/hiddenleaf/internal/motion"
)

const (
	colorNight   = "#0f172a"
	colorChakra  = "#60a5fa"
	colorGlow    = "#fde68a"
	colorLeaf    = "#34d399"
	colorCloud   = "#334155"
	colorScroll  = "#fcd34d"
	colorVillage = "#a7f3d0"
	colorMuted   = "#94a3b8"
	colorBorder  = "#475569"
)

var (
	headerPaint  = paint{fg: "#e2e8f0", bold: true}
	textPaint    = paint{fg: "#cbd5e1"}
	mutedPaint   = paint{fg: colorMuted}
	cloudPaint   = paint{fg: colorCloud}
	leafPaint    = paint{fg: colorLeaf}
	scrollPaint  = paint{fg: colorScroll, bold: true}
	lorePaint    = paint{fg: "#fef3c7"}
	borderPaint  = paint{fg: colorBorder}
	villagePaint = paint{fg: colorVillage}
	mountPaint   = paint{fg: "#0b4f4a"}
	housePaint   = paint{fg: "#115e59"}
	gatePaint    = paint{fg: "#2dd4bf", bold: true}
	clonePaint   = paint{fg: "#f97316", bold: true}
	starPaint    = paint{fg: "#e5e7eb", bold: true}
	buttonPaint  = paint{fg: "#f59e0b", bold: true}
)

// Colour sweeps: title letters fade in from the night sky to the chakra
// glow; trail dots fade out from chakra blue; card edges brighten with
// tilt; lightning tints the sky.
var (
	revealSweep = motion.MustColorSweep(colorNight, colorGlow, motion.MustMapping(0, 1, 0, 1))
	trailSweep  = motion.MustColorSweep(colorNight, colorChakra, motion.MustMapping(0, 0.8, 0, 1))
	tiltSweep   = motion.MustColorSweep(colorBorder, colorChakra, motion.MustMapping(0, 10, 0, 1))

	lightningSweep = motion.MustColorSweep(colorNight, "#e0f2fe", motion.MustMapping(0, 1, 0, 1))
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	soundOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorLeaf))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)
