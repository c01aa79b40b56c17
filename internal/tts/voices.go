package tts

import "sort"

// Voice describes an AWS Polly Arabic voice exposed by the gateway.
type Voice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Gender   string `json:"gender"`
	Engine   string `json:"engine"`
}

// DefaultVoice is the voice key used when a request does not name one.
const DefaultVoice = "zeina"

// Voices maps short voice keys to descriptors. The table is fixed at build
// time and never mutated.
var Voices = map[string]Voice{
	"zeina": {
		ID:       "Zeina",
		Name:     "Zeina (Female, Modern Standard Arabic)",
		Language: "arb",
		Gender:   "Female",
		Engine:   "standard",
	},
	"hala": {
		ID:       "Hala",
		Name:     "Hala (Female, Gulf Arabic)",
		Language: "ar-AE",
		Gender:   "Female",
		Engine:   "neural",
	},
}

// LookupVoice returns the descriptor for key.
func LookupVoice(key string) (Voice, bool) {
	v, ok := Voices[key]
	return v, ok
}

// VoiceKeys returns the registered voice keys in a stable order.
func VoiceKeys() []string {
	keys := make([]string, 0, len(Voices))
	for k := range Voices {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
