package notify

import (
	"fmt"
	"strings"
)

const whatsAppBase = "https://wa.me/"

// BookingMessage is the text a passenger sends a driver to ask for a seat.
func BookingMessage(stage, departureTime, busNumber string) string {
	return fmt.Sprintf("Hi, I would like to book a seat on the bus departing from %s at %s. Bus number: %s",
		stage, departureTime, busNumber)
}

// WhatsAppLink builds a wa.me chat link to phone with message prefilled.
// Everything but digits is dropped from phone.
func WhatsAppLink(phone, message string) string {
	return whatsAppBase + digits(phone) + "?text=" + encodeURIComponent(message)
}

// BookingLink is WhatsAppLink with the standard seat request message.
func BookingLink(phone, stage, departureTime, busNumber string) string {
	return WhatsAppLink(phone, BookingMessage(stage, departureTime, busNumber))
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

// encodeURIComponent escapes like the browser function of the same name, so
// links match what a web client would produce (spaces become %20).
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
