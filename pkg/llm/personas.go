package llm

const (
	PersonaTwitter    = "twitter"
	PersonaLinkedIn   = "linkedin"
	PersonaNewsletter = "newsletter"
	PersonaInstagram  = "instagram"
)

// Persona describes one target output format. The set is fixed at startup and
// never mutated; result order follows this list.
type Persona struct {
	ID          string
	Name        string
	Icon        string
	Description string
	MaxTokens   int64
	Temperature float64
}

var Personas = []Persona{
	{
		ID:          PersonaTwitter,
		Name:        "Twitter Thread",
		Icon:        "Twitter",
		Description: "Viral, attention-grabbing thread with hooks",
		MaxTokens:   1500,
		Temperature: 0.8,
	},
	{
		ID:          PersonaLinkedIn,
		Name:        "LinkedIn Post",
		Icon:        "Linkedin",
		Description: "Professional, thought-leadership style",
		MaxTokens:   1000,
		Temperature: 0.7,
	},
	{
		ID:          PersonaNewsletter,
		Name:        "Newsletter",
		Icon:        "Mail",
		Description: "Summarized with bullet points and clear structure",
		MaxTokens:   1200,
		Temperature: 0.6,
	},
	{
		ID:          PersonaInstagram,
		Name:        "Instagram Caption",
		Icon:        "Instagram",
		Description: "Emoji-rich, hashtag-optimized caption",
		MaxTokens:   800,
		Temperature: 0.9,
	},
}

func PersonaByID(id string) (Persona, bool) {
	for _, p := range Personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}
