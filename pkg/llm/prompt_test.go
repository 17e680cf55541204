package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestBuildPrompts_Deterministic(t *testing.T) {
	settings := DefaultSettings()

	for _, p := range Personas {
		first := BuildPrompts(p, settings)
		second := BuildPrompts(p, settings)

		assert.Equal(t, first, second)
	}
}

func TestBuildPrompts_DraftEndsWithContentMarker(t *testing.T) {
	for _, p := range Personas {
		prompts := BuildPrompts(p, DefaultSettings())

		assert.Equal(t, true, strings.HasSuffix(prompts.Draft, draftClose))
	}
}

func TestBuildPrompts_HashtagsDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.IncludeHashtags = false

	for _, p := range Personas {
		prompts := BuildPrompts(p, settings)

		assert.Equal(t, true, strings.Contains(prompts.Edit, "Remove all hashtags."))
		assert.Equal(t, false, strings.Contains(prompts.Edit, "Place relevant hashtags"))
	}
}

func TestBuildPrompts_HashtagsEnabled(t *testing.T) {
	for _, p := range Personas {
		prompts := BuildPrompts(p, DefaultSettings())

		assert.Equal(t, true, strings.Contains(prompts.Edit, "Place relevant hashtags naturally at the end"))
		assert.Equal(t, false, strings.Contains(prompts.Edit, "Remove all hashtags."))
	}
}

func TestBuildPrompts_EmojisDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.IncludeEmojis = false

	for _, p := range Personas {
		prompts := BuildPrompts(p, settings)

		assert.Equal(t, true, strings.Contains(prompts.Draft, emojiOffDirective))
		assert.Equal(t, false, strings.Contains(prompts.Draft, "emojis liberally"))
		assert.Equal(t, false, strings.Contains(prompts.Draft, "8-12 relevant emojis"))
		assert.Equal(t, true, strings.Contains(prompts.Edit, "Remove all emojis."))
	}
}

func TestBuildPrompts_EmojisEnabled(t *testing.T) {
	for _, p := range Personas {
		prompts := BuildPrompts(p, DefaultSettings())

		if p.ID == PersonaInstagram {
			assert.Equal(t, true, strings.Contains(prompts.Draft, "8-12 relevant emojis"))
		} else {
			assert.Equal(t, true, strings.Contains(prompts.Draft, emojiOnDirective))
		}
		assert.Equal(t, true, strings.Contains(prompts.Edit, "Include emojis naturally"))
	}
}

func TestBuildPrompts_LengthDirectives(t *testing.T) {
	persona, _ := PersonaByID(PersonaNewsletter)

	short := DefaultSettings()
	short.Length = LengthShort
	assert.Equal(t, true, strings.Contains(BuildPrompts(persona, short).Edit, "more concise"))

	long := DefaultSettings()
	long.Length = LengthLong
	assert.Equal(t, true, strings.Contains(BuildPrompts(persona, long).Edit, "longer and more detailed"))

	def := BuildPrompts(persona, DefaultSettings()).Edit
	assert.Equal(t, false, strings.Contains(def, "more concise"))
	assert.Equal(t, false, strings.Contains(def, "longer and more detailed"))
}

func TestBuildPrompts_TwitterThreadDefault(t *testing.T) {
	persona, _ := PersonaByID(PersonaTwitter)
	prompts := BuildPrompts(persona, DefaultSettings())

	assert.Equal(t, true, strings.Contains(prompts.Draft, "Twitter thread"))
	assert.Equal(t, true, strings.Contains(prompts.Draft, `tweet numbers like "1/", "2/"`))
	assert.Equal(t, true, strings.Contains(prompts.Edit, "Format as a numbered thread"))
}

func TestBuildPrompts_TwitterSinglePostBasicAccount(t *testing.T) {
	persona, _ := PersonaByID(PersonaTwitter)

	settings := DefaultSettings()
	settings.XFormat = XFormatPost
	settings.XAccountType = XAccountBasic

	prompts := BuildPrompts(persona, settings)

	assert.Equal(t, true, strings.Contains(prompts.Draft, "single viral X post"))
	assert.Equal(t, false, strings.Contains(prompts.Draft, "5-10 bite-sized tweets"))
	assert.Equal(t, true, strings.Contains(prompts.Edit, "Format as a single post."))
	assert.Equal(t, true, strings.Contains(prompts.Edit, "280 characters"))
}

func TestBuildPrompts_TwitterPremiumSkipsCharCeiling(t *testing.T) {
	persona, _ := PersonaByID(PersonaTwitter)

	settings := DefaultSettings()
	settings.XAccountType = XAccountPremium

	prompts := BuildPrompts(persona, settings)

	assert.Equal(t, false, strings.Contains(prompts.Edit, "280 characters"))
}

func TestBuildPrompts_LinkedInFormats(t *testing.T) {
	persona, _ := PersonaByID(PersonaLinkedIn)

	post := BuildPrompts(persona, DefaultSettings())
	assert.Equal(t, true, strings.Contains(post.Edit, "short feed post"))

	settings := DefaultSettings()
	settings.LinkedInFormat = LinkedInFormatArticle
	article := BuildPrompts(persona, settings)
	assert.Equal(t, true, strings.Contains(article.Edit, "long-form article with section headings"))
}

func TestBuildPrompts_EditDemandsBareOutput(t *testing.T) {
	for _, p := range Personas {
		prompts := BuildPrompts(p, DefaultSettings())

		assert.Equal(t, true, strings.Contains(prompts.Edit, "ONLY the final polished text"))
	}
}
