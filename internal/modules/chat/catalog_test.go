package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalog(t *testing.T) {
	require.NoError(t, ValidateCatalog())
}

func TestWelcomeMessages(t *testing.T) {
	msgs := WelcomeMessages(time.Now())
	require.Len(t, msgs, 3)
	assert.Equal(t, "1", msgs[0].ID)
	assert.Equal(t, RoleBot, msgs[0].Role)
	assert.Empty(t, msgs[1].Options)
	assert.Len(t, msgs[2].Options, 11)
}

func TestLookupOption(t *testing.T) {
	entry, ok := LookupOption("property_purchase")
	require.True(t, ok)
	assert.Len(t, entry.Options, 3)

	_, ok = LookupOption("gallery")
	assert.False(t, ok)

	_, ok = LookupOption("no_such_option")
	assert.False(t, ok)
}

func TestClassifyFreeText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"price keyword", "What is the PRICE of the villa?", keywordRules[0].reply},
		{"how much phrase", "how much for the penthouse", keywordRules[0].reply},
		{"location", "where are the properties", keywordRules[1].reply},
		{"amenities", "tell me about amenities", keywordRules[2].reply},
		{"greeting", "hello there", keywordRules[3].reply},
		{"thanks", "thank you so much", keywordRules[4].reply},
		{"contact", "what is your phone number", keywordRules[5].reply},
		{"no match", "tell me about schools nearby", genericReply},
		// "how much" outranks the "where" that follows it
		{"rule order", "how much and where", keywordRules[0].reply},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyFreeText(tc.input))
		})
	}
}
