package llm

const (
	LengthShort   = "short"
	LengthDefault = "default"
	LengthLong    = "long"

	XFormatThread = "thread"
	XFormatPost   = "post"

	XAccountBasic   = "basic"
	XAccountPremium = "premium"

	LinkedInFormatPost    = "post"
	LinkedInFormatArticle = "article"
)

// Settings are the per-request stylistic knobs applied on top of each
// persona's base prompt.
type Settings struct {
	IncludeEmojis   bool    `json:"includeEmojis"`
	IncludeHashtags bool    `json:"includeHashtags"`
	Length          string  `json:"length"`
	XFormat         string  `json:"xFormat"`
	XAccountType    string  `json:"xAccountType"`
	LinkedInFormat  string  `json:"linkedinFormat"`
	Temperature     float64 `json:"temperature"`
}

// DefaultSettings returns the settings used when a request omits them.
// Temperature zero means "let the edit stage pick its own low default".
func DefaultSettings() Settings {
	return Settings{
		IncludeEmojis:   true,
		IncludeHashtags: true,
		Length:          LengthDefault,
		XFormat:         XFormatThread,
		XAccountType:    XAccountBasic,
		LinkedInFormat:  LinkedInFormatPost,
	}
}
