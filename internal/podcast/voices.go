package podcast

import "github.com/wandercast/wandercast/pkg/provider/speech"

// Resolved voice roles. Segmentation emits exactly these four; the catalogue
// maps each to a concrete ElevenLabs voice.
const (
	RoleAlex  = "alex"
	RoleSarah = "sarah"
	RoleSam   = "sam"
	RoleJames = "james"
)

// DefaultVoices maps voice roles to public ElevenLabs voice IDs. The alex
// entry doubles as the degradation target for unknown roles.
func DefaultVoices() map[string]speech.VoiceProfile {
	return map[string]speech.VoiceProfile{
		RoleAlex: {
			ID:       "21m00Tcm4TlvDq8ikWAM",
			Name:     "Rachel",
			Provider: "elevenlabs",
			Metadata: map[string]string{"gender": "female"},
		},
		RoleSarah: {
			ID:       "EXAVITQu4vr4xnSDxMaL",
			Name:     "Bella",
			Provider: "elevenlabs",
			Metadata: map[string]string{"gender": "female"},
		},
		RoleSam: {
			ID:       "pNInz6obpgDQGcFmaJgB",
			Name:     "Adam",
			Provider: "elevenlabs",
			Metadata: map[string]string{"gender": "male"},
		},
		RoleJames: {
			ID:       "TxGEqnHWrfWFTfGW9XjX",
			Name:     "Josh",
			Provider: "elevenlabs",
			Metadata: map[string]string{"gender": "male"},
		},
	}
}
