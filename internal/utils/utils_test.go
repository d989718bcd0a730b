package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppNumber(t *testing.T) {
	// Punctuation stripped, country code prefixed
	assert.Equal(t, "5511988887777", WhatsAppNumber("(11) 98888-7777"))
	// Country code already present is not doubled
	assert.Equal(t, "5511988887777", WhatsAppNumber("+55 11 98888-7777"))
	assert.Equal(t, "", WhatsAppNumber("sem telefone"))
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "11999998888", OnlyDigits("(11) 99999-8888"))
	assert.Equal(t, "", OnlyDigits("abc"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"wrapped in prose", `Here you go: {"a":1} hope it helps`, `{"a":1}`, true},
		{"no object", "no json here", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractHTMLDocument(t *testing.T) {
	raw := "Sure! ```html\n<!DOCTYPE html><html><body>ok</body></html>\n``` done"
	got := ExtractHTMLDocument(raw)
	assert.Equal(t, "<!DOCTYPE html><html><body>ok</body></html>", got)
}
