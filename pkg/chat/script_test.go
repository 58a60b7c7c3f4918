package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name     string
		question string
		wantHint string
	}{
		{name: "rug keyword", question: "Do you have any rugs?", wantHint: "handwoven"},
		{name: "textile keyword", question: "Looking for textiles", wantHint: "handwoven"},
		{name: "pottery keyword", question: "Tell me about pottery", wantHint: "Tamegroute"},
		{name: "ceramic keyword", question: "CERAMIC plates?", wantHint: "Tamegroute"},
		{name: "price keyword", question: "Why the price?", wantHint: "fairly priced"},
		{name: "shipping keyword", question: "What about shipping to France?", wantHint: "worldwide shipping"},
		{name: "delivery keyword", question: "delivery times?", wantHint: "5-14 business days"},
		{name: "artisan keyword", question: "who is the artisan behind this?", wantHint: "cooperatives"},
		{name: "greeting", question: "hello there", wantHint: "discover the beauty"},
		{name: "case insensitive", question: "HELLO", wantHint: "discover the beauty"},
		{name: "unknown topic falls back", question: "what is the meaning of life", wantHint: "happy to help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Respond(tt.question)
			assert.Contains(t, strings.ToLower(got), strings.ToLower(tt.wantHint))
		})
	}
}

func TestRespondFirstRuleWins(t *testing.T) {
	// "rug" outranks "price" in the script order.
	got := Respond("what is the price of this rug?")
	assert.Contains(t, got, "handwoven")
}

func TestGreetingNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Greeting)
}
