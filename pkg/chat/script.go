// Package chat implements the FAQ assistant's scripted responder, used when
// no remote chat endpoint is configured.
package chat

import "strings"

// Greeting opens every conversation.
const Greeting = "Hello! Welcome to Hrayfi. How can I help you find the perfect Moroccan artisan product today?"

type rule struct {
	keywords []string
	answer   string
}

// Script rules are checked in order; the first keyword hit wins.
var rules = []rule{
	{
		keywords: []string{"rug", "textile"},
		answer:   "Our rugs and textiles are handwoven by skilled artisans from regions like Azilal and Beni Ourain. Each piece tells a unique story through its patterns and colors. Would you like to know more about a specific style?",
	},
	{
		keywords: []string{"pottery", "ceramic"},
		answer:   "Moroccan pottery, especially from Tamegroute and Fez, has been crafted for centuries using traditional techniques. The distinctive green glaze of Tamegroute pottery comes from copper found in local mountains. What type of pottery interests you?",
	},
	{
		keywords: []string{"price", "cost"},
		answer:   "Our prices reflect the authentic craftsmanship and quality materials used. Each piece is fairly priced to support our artisan partners. You can find detailed pricing on each product page.",
	},
	{
		keywords: []string{"shipping", "delivery"},
		answer:   "We offer worldwide shipping with careful packaging to ensure your handcrafted items arrive safely. Shipping times vary by location, typically 5-14 business days internationally.",
	},
	{
		keywords: []string{"artisan", "maker"},
		answer:   "We work directly with artisan cooperatives and individual craftspeople across Morocco. Each product page includes information about the artisan and their region. This ensures fair trade and authentic craftsmanship.",
	},
	{
		keywords: []string{"hello", "hi"},
		answer:   "Hello! I'm here to help you discover the beauty of Moroccan craftsmanship. Are you looking for something specific, or would you like recommendations?",
	},
}

const fallback = "Thank you for your question! I'd be happy to help you learn more about our authentic Moroccan crafts. You can browse our categories or ask me about specific products, artisans, or regions."

// Respond answers a question from the script.
func Respond(question string) string {
	q := strings.ToLower(question)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.answer
			}
		}
	}
	return fallback
}
