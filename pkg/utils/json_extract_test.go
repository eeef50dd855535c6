package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_FencedBlock(t *testing.T) {
	raw := "Here is your itinerary:\n```json\n[{\"morning\": null}]\n```\nEnjoy your trip!"

	payload, err := ExtractJSON(raw)

	require.NoError(t, err)
	assert.Equal(t, `[{"morning": null}]`, payload)
}

func TestExtractJSON_BareResponse(t *testing.T) {
	raw := "  [{\"morning\": null}]  \n"

	payload, err := ExtractJSON(raw)

	require.NoError(t, err)
	assert.Equal(t, `[{"morning": null}]`, payload)
}

func TestExtractJSON_FencedAndBareAgree(t *testing.T) {
	body := `[{"afternoon": {"name": "City Palace"}}]`

	fenced, err := ExtractJSON("```json\n" + body + "\n```")
	require.NoError(t, err)

	bare, err := ExtractJSON(body)
	require.NoError(t, err)

	assert.Equal(t, bare, fenced)
}

func TestExtractJSON_Empty(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t"},
		{"empty fence", "```json\n\n```"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractJSON(tc.raw)
			assert.Error(t, err)
		})
	}
}
