package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "lowercase", token: "Bonjour", want: "bonjour"},
		{name: "trailing punctuation", token: "merci!", want: "merci"},
		{name: "quotes and brackets", token: `("Chat")`, want: "chat"},
		{name: "apostrophe", token: "Aujourd'hui,", want: "aujourdhui"},
		{name: "accents are kept", token: "ÉTÉ?", want: "été"},
		{name: "only punctuation", token: "...", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.token))
		})
	}
}

func TestTokenize(t *testing.T) {
	text := "Bonjour, je suis fatigué!"
	got := Tokenize(text)

	assert.Equal(t, []Segment{
		{Text: "Bonjour"},
		{Text: ",", Separator: true},
		{Text: " ", Separator: true},
		{Text: "je"},
		{Text: " ", Separator: true},
		{Text: "suis"},
		{Text: " ", Separator: true},
		{Text: "fatigué"},
		{Text: "!", Separator: true},
	}, got)

	var rebuilt strings.Builder
	for _, segment := range got {
		rebuilt.WriteString(segment.Text)
	}
	assert.Equal(t, text, rebuilt.String())
	assert.Empty(t, Tokenize(""))
}

func TestNewStaticDictionary(t *testing.T) {
	dictionary, err := NewStaticDictionary()
	require.NoError(t, err)
	assert.Greater(t, dictionary.Len(), 500)

	tests := []struct {
		word string
		want string
	}{
		{word: "bonjour", want: "hola"},
		{word: "chien", want: "perro"},
		{word: "fatigué", want: "cansado"},
		{word: "aujourdhui", want: "hoy"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := dictionary.Lookup(tt.word)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := dictionary.Lookup("ordinateur-quantique")
	assert.False(t, ok)
}

func TestParseStaticDictionary(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantLen  int
		wantErr  bool
	}{
		{
			name:     "keys are normalized",
			contents: "\"Pomme\": manzana\n\"l'eau\": el agua\n",
			wantLen:  2,
		},
		{
			name:     "empty translations are skipped",
			contents: "pomme: manzana\npoire: \"\"\n",
			wantLen:  1,
		},
		{
			name:     "not a mapping",
			contents: "- pomme\n- poire\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStaticDictionary([]byte(tt.contents))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, got.Len())
		})
	}

	var missing *StaticDictionary
	_, ok := missing.Lookup("pomme")
	assert.False(t, ok)
	assert.Zero(t, missing.Len())
}
