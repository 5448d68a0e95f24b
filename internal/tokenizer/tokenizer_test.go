package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentences(t *testing.T) {
	tok := NewSegmenter()

	sents, err := tok.Sentences("The quick brown fox jumps. It lands on the lazy dog! Was anyone watching?")
	require.NoError(t, err)
	require.Len(t, sents, 3)
	assert.Equal(t, "The quick brown fox jumps.", sents[0])
	assert.Equal(t, "It lands on the lazy dog!", sents[1])
	assert.Equal(t, "Was anyone watching?", sents[2])
}

func TestSentences_Empty(t *testing.T) {
	tok := NewSegmenter()

	sents, err := tok.Sentences("")
	require.NoError(t, err)
	assert.Empty(t, sents)

	sents, err = tok.Sentences("   \n\t  ")
	require.NoError(t, err)
	assert.Empty(t, sents)
}

func TestSentences_InvalidUTF8(t *testing.T) {
	tok := NewSegmenter()

	_, err := tok.Sentences("valid prefix \xff\xfe invalid")
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestWords(t *testing.T) {
	tok := NewSegmenter()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "sentence with punctuation",
			text: "The quick brown fox jumps.",
			want: []string{"The", "quick", "brown", "fox", "jumps"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "punctuation only",
			text: "... !!! ???",
			want: nil,
		},
		{
			name: "numbers count as words",
			text: "chapter 12, page 7",
			want: []string{"chapter", "12", "page", "7"},
		},
		{
			name: "contraction stays one token",
			text: "don't stop",
			want: []string{"don't", "stop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Words(tt.text))
		})
	}
}

func TestIsStopWord(t *testing.T) {
	tok := NewSegmenter()

	assert.True(t, tok.IsStopWord("the"))
	assert.True(t, tok.IsStopWord("The"))
	assert.True(t, tok.IsStopWord("don't"))
	assert.False(t, tok.IsStopWord("fox"))
	assert.False(t, tok.IsStopWord(""))
}
