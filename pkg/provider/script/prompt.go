package script

import (
	"fmt"
	"strings"
)

// SystemPrompt is the shared system instruction for every script backend.
const SystemPrompt = "You are a professional podcast script writer who creates engaging, " +
	"conversational content about travel destinations. Write scripts that sound natural and entertaining."

// languageNames maps supported language codes to display names used in the
// prompt. Unlisted codes are passed through verbatim.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"hi": "Hindi",
	"ar": "Arabic",
}

// Prompt builds the user prompt requesting a two-host dialogue about
// location. When language is neither empty nor "en", an instruction to write
// the dialogue in that language is appended; the "Alex:"/"Sam:" prefixes stay
// in English so segmentation keeps working.
func Prompt(location, language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Create an engaging podcast script for a 3-4 minute episode about %s. The script should feature two hosts, Alex and Sam, having a natural conversation about this location. Include:

1. Interesting historical facts
2. Cultural highlights
3. Must-visit attractions
4. Local cuisine or traditions
5. Fun or surprising facts
6. Natural conversation flow with interruptions and reactions

Format the script clearly with:
- Host names before each line (e.g. "Alex:" and "Sam:")
- Natural dialogue that sounds conversational
- Include some enthusiasm and personality
- Keep it informative but entertaining

Make it sound like two friends talking about travel experiences and interesting facts about %s.`, location, location)

	if language != "" && language != "en" {
		fmt.Fprintf(&b, "\n\nWrite all dialogue in %s, but keep the \"Alex:\" and \"Sam:\" speaker prefixes exactly as written.", LanguageName(language))
	}
	return b.String()
}

// LanguageName returns the display name for a language code, or the code
// itself when unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
