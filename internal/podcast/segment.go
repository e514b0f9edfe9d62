// Package podcast implements the core script-to-audio pipeline: segmenting a
// dialogue transcript into per-speaker turns, synthesising each turn with the
// configured speech provider, and assembling the buffers into one audio file.
package podcast

import "strings"

// GenderPreference selects which concrete voice pair is bound to the two host
// roles for one generation.
type GenderPreference string

const (
	// GenderFemale binds Alex→alex and Sam→sarah.
	GenderFemale GenderPreference = "female"

	// GenderMale binds Alex→sam and Sam→james.
	GenderMale GenderPreference = "male"
)

// Segment is one attributed utterance extracted from a transcript. Speaker is
// a resolved voice role ("alex", "sarah", "sam", or "james"); Text is always
// non-empty after trimming.
type Segment struct {
	Speaker string
	Text    string
}

// Transcript vocabulary: the prefixes the script generator is instructed to
// emit, matched case-insensitively at the start of a line. These are fixed
// host names and deliberately unrelated to the resolved voice roles.
const (
	alexPrefix = "alex:"
	samPrefix  = "sam:"
)

// roleSlots returns the (primary, secondary) voice roles for a preference.
// Anything other than an explicit "male" falls back to the female pair, so an
// unrecognised preference degrades instead of failing.
func roleSlots(pref GenderPreference) (primary, secondary string) {
	if pref == GenderMale {
		return RoleSam, RoleJames
	}
	return RoleAlex, RoleSarah
}

// SegmentScript splits a raw dialogue transcript into ordered per-speaker
// segments. It is a pure function: a line-driven accumulator that flushes the
// running utterance whenever a recognised "Alex:" or "Sam:" prefix starts a
// new turn, and joins unprefixed continuation lines with a single space.
//
// A transcript with no recognised prefixes becomes a single segment spoken by
// the primary voice. An empty or whitespace-only transcript yields no
// segments.
//
// Known limitation: a continuation line that merely quotes "Alex:" or "Sam:"
// at its start is indistinguishable from a genuine turn change and is treated
// as one.
func SegmentScript(transcript string, pref GenderPreference) []Segment {
	primary, secondary := roleSlots(pref)

	var segments []Segment
	currentSpeaker := primary
	var currentText string

	flush := func() {
		if currentText != "" {
			segments = append(segments, Segment{
				Speaker: currentSpeaker,
				Text:    strings.TrimSpace(currentText),
			})
		}
	}

	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, alexPrefix):
			flush()
			currentSpeaker = primary
			currentText = strings.TrimSpace(line[len(alexPrefix):])
		case strings.HasPrefix(lower, samPrefix):
			flush()
			currentSpeaker = secondary
			currentText = strings.TrimSpace(line[len(samPrefix):])
		default:
			// Continuation of the current speaker's utterance.
			if currentText == "" {
				currentText = line
			} else {
				currentText += " " + line
			}
		}
	}
	flush()

	// No recognisable speaker labels: treat the whole script as one
	// monologue by the primary voice.
	if len(segments) == 0 {
		if trimmed := strings.TrimSpace(transcript); trimmed != "" {
			segments = append(segments, Segment{Speaker: primary, Text: trimmed})
		}
	}

	return segments
}
