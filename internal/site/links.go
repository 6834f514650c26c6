package site

import (
	"net/url"
	"strings"
)

const whatsAppBase = "https://wa.me/"

// WhatsAppURL builds a wa.me deep link with a prefilled message. Spaces are
// encoded as %20 rather than '+'.
func WhatsAppURL(number, text string) string {
	number = digits(number)
	if text == "" {
		return whatsAppBase + number
	}
	return whatsAppBase + number + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
