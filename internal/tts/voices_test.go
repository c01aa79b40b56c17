package tts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupVoice(t *testing.T) {
	v, ok := LookupVoice("zeina")
	require.True(t, ok)
	assert.Equal(t, "Zeina", v.ID)
	assert.Equal(t, "arb", v.Language)
	assert.Equal(t, "standard", v.Engine)

	v, ok = LookupVoice("hala")
	require.True(t, ok)
	assert.Equal(t, "Hala", v.ID)
	assert.Equal(t, "ar-AE", v.Language)
	assert.Equal(t, "neural", v.Engine)

	_, ok = LookupVoice("nonexistent")
	assert.False(t, ok)
}

func TestVoiceKeys(t *testing.T) {
	keys := VoiceKeys()
	assert.Equal(t, []string{"hala", "zeina"}, keys)
}

func TestDefaultVoiceRegistered(t *testing.T) {
	_, ok := LookupVoice(DefaultVoice)
	assert.True(t, ok)
}
