package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Who&#039;s there?", want: "Who's there?"},
		{in: "A &amp; B", want: "A & B"},
		{in: "&quot;Quoted&quot;", want: `"Quoted"`},
		{in: "&lt;tag&gt;", want: "<tag>"},
		{in: "Caf&eacute; &#x263A;", want: "Café ☺"},
		{in: "&rsquo;s &hellip;", want: "’s …"},
		{in: "plain text", want: "plain text"},
		{in: "", want: ""},
		{in: "&unknown; stays", want: "&unknown; stays"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeEntities(tt.in))
		})
	}
}

func TestDecodeEntitiesIdempotentOnPlainText(t *testing.T) {
	inputs := []string{
		"Who's there?",
		"A & B",
		"2+2=?",
		"Schrödinger's cat",
		"",
	}

	for _, s := range inputs {
		once := DecodeEntities(s)
		assert.Equal(t, once, DecodeEntities(once), "input %q", s)
	}
}

func TestDecodeAll(t *testing.T) {
	assert.Equal(t, []string{"It's", "A & B"}, decodeAll([]string{"It&#039;s", "A &amp; B"}))
	assert.Empty(t, decodeAll(nil))
}
