package llm

import "strings"

// Prompts holds the two system prompts driving one persona's pipeline.
type Prompts struct {
	Draft string
	Edit  string
}

// Draft-stage base templates. Sub-format differences are separate template
// variants selected by settings, never text-patched into each other.

const twitterThreadTemplate = `Transform the following content into a viral Twitter thread (X post).

Guidelines:
- Start with an irresistible hook that stops the scroll
- Break content into 5-10 bite-sized tweets
- Each tweet should be under 280 characters
- Use line breaks between tweets
- Include numbers or bullets for easy reading
- Add 1-2 relevant hashtags on the final tweet
- Use casual, conversational language
- Ask questions or use controversy to drive engagement
- Focus on the most surprising or valuable insights

Format as a thread with tweet numbers like "1/", "2/", etc.`

const twitterPostTemplate = `Transform the following content into a single viral X post.

Guidelines:
- Start with an irresistible hook that stops the scroll
- Keep everything in one self-contained post
- Use line breaks for easy reading
- Include numbers or bullets where they help
- Add 1-2 relevant hashtags at the end
- Use casual, conversational language
- Ask questions or use controversy to drive engagement
- Focus on the most surprising or valuable insights

Format as a single post with no thread numbering.`

const linkedinTemplate = `Transform the following content into a professional LinkedIn post.

Guidelines:
- Start with a compelling personal story or insight
- Use short paragraphs (1-2 sentences max) for readability
- Include 3-5 key takeaways formatted with bullet points
- Add a thoughtful question at the end to drive comments
- Use professional but approachable tone
- Mention lessons learned or actionable advice
- Keep it under 1500 characters
- Add 3-5 relevant hashtags at the end
- Sign off with your name or initials (use "CS" as placeholder)`

const newsletterTemplate = `Transform the following content into a newsletter format.

Guidelines:
- Create a catchy subject line (label as "Subject:")
- Write a brief, engaging introduction (2-3 sentences)
- Break down main points into 3-5 clear bullet points
- Add a "Key Takeaway" section at the end
- Include a "What to do next" or action item section
- Use formatting like **bold** for emphasis
- Keep it scannable and easy to read
- Professional but conversational tone
- Include placeholders for [Your Name] and [Company/Brand]`

const instagramTemplate = `Transform the following content into an engaging Instagram caption.

Guidelines:
- Start with a strong hook line
- Use line breaks after every 1-2 sentences
- Keep the main caption under 150 words
- Add a clear call-to-action ("Comment below", "Save this", "Tag a friend")
- Include 15-20 relevant hashtags (mix of popular and niche)
- Add a one-sentence "ALT text" description for accessibility
- Use casual, friendly tone
- Format with spacing for readability`

// Emoji directives appended to the draft template as a trailing fragment.
const (
	emojiOnDirective        = "Use emojis liberally throughout the output."
	emojiOffDirective       = "Do not use any emojis in the output."
	instagramEmojiDirective = "Include 8-12 relevant emojis throughout the text, starting with the hook line."
)

const draftClose = "Content to transform:"

const editPreamble = `You are a strict formatting and compliance editor for social media content. You will receive a drafted post. Apply every rule below, then return ONLY the final polished text. No commentary, no explanations, no conversational wrapper.

Rules:`

// BuildPrompts assembles the draft and edit system prompts for one persona
// under the given settings. Pure and deterministic.
func BuildPrompts(p Persona, s Settings) Prompts {
	return Prompts{
		Draft: buildDraftPrompt(p, s),
		Edit:  buildEditPrompt(p, s),
	}
}

func buildDraftPrompt(p Persona, s Settings) string {
	parts := []string{baseTemplate(p, s)}

	switch {
	case !s.IncludeEmojis:
		parts = append(parts, emojiOffDirective)
	case p.ID == PersonaInstagram:
		parts = append(parts, instagramEmojiDirective)
	default:
		parts = append(parts, emojiOnDirective)
	}

	parts = append(parts, draftClose)
	return strings.Join(parts, "\n\n")
}

func baseTemplate(p Persona, s Settings) string {
	switch p.ID {
	case PersonaTwitter:
		if s.XFormat == XFormatPost {
			return twitterPostTemplate
		}
		return twitterThreadTemplate
	case PersonaLinkedIn:
		return linkedinTemplate
	case PersonaNewsletter:
		return newsletterTemplate
	case PersonaInstagram:
		return instagramTemplate
	}
	return ""
}

// buildEditPrompt composes the second-stage checklist. Every applicable rule
// appears; mutually exclusive pairs (emoji on/off, hashtag on/off) select one.
func buildEditPrompt(p Persona, s Settings) string {
	var rules []string

	if s.IncludeHashtags {
		rules = append(rules, "Place relevant hashtags naturally at the end of the post.")
	} else {
		rules = append(rules, "Remove all hashtags.")
	}

	if s.IncludeEmojis {
		rules = append(rules, "Include emojis naturally where they fit the tone.")
	} else {
		rules = append(rules, "Remove all emojis.")
	}

	switch s.Length {
	case LengthShort:
		rules = append(rules, "Make the output noticeably more concise. Cut anything non-essential.")
	case LengthLong:
		rules = append(rules, "Elaborate on the key points. The output should be longer and more detailed.")
	}

	switch p.ID {
	case PersonaTwitter:
		if s.XFormat == XFormatPost {
			rules = append(rules, `Format as a single post. Remove any thread numbering like "1/" or "2/".`)
		} else {
			rules = append(rules, `Format as a numbered thread with parts labeled "1/", "2/", and so on.`)
		}
		if s.XAccountType == XAccountBasic {
			rules = append(rules, "Hard limit: every individual post must stay under 280 characters.")
		}
	case PersonaLinkedIn:
		if s.LinkedInFormat == LinkedInFormatArticle {
			rules = append(rules, "Format as a long-form article with section headings.")
		} else {
			rules = append(rules, "Format as a short feed post with line breaks between short paragraphs.")
		}
	}

	var sb strings.Builder
	sb.WriteString(editPreamble)
	for _, rule := range rules {
		sb.WriteString("\n- ")
		sb.WriteString(rule)
	}
	return sb.String()
}
