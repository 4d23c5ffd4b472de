package ui

const (
	heroSubtitle = "A living anime world of chakra, leaves, and legendary shinobi."
	heroButtons  = "[ Start Your Path ]   [ See the Village ]"
	marqueeText  = "Believe It! • Rise as a Shinobi • Protect the Leaf • Master Your Chakra • "
	footerText   = "A fan-made interactive tribute world built for anime lovers."
)

type loreEntry struct {
	title   string
	content string
}

var loreEntries = []loreEntry{
	{
		title:   "Will of Fire",
		content: "The spirit of the Hidden Leaf burns bright. Protect your comrades, honor your village, and light the way with unwavering resolve.",
	},
	{
		title:   "Unbreakable Bonds",
		content: "Through rivalry and friendship, shinobi grow stronger. Every step, every battle, forges ties that shape destiny.",
	},
}

type cardEntry struct {
	title    string
	subtitle string
	color    string
}

var cardEntries = []cardEntry{
	{title: "Heroic Ninja", subtitle: "Unrelenting spirit, swirling energy.", color: "#60a5fa"},
	{title: "Prodigy", subtitle: "Lightning-fast precision, calm fury.", color: "#38bdf8"},
	{title: "Healer", subtitle: "Steadfast strength, blooming resolve.", color: "#f472b6"},
}

// cardParticles is the number of orbit particles on each card.
const cardParticles = 12
