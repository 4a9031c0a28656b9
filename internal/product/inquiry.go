package product

import (
	"fmt"
	"net/url"
)

const whatsAppBaseURL = "https://wa.me/"

// InquiryURL builds the WhatsApp deep link a shopper uses to ask whether a piece is still available.
func InquiryURL(phone string, p Product) string {
	msg := fmt.Sprintf("Hello, I'm interested in the %s (Lek %d). Is it still available?", p.Name, p.Price)
	return whatsAppBaseURL + phone + "?text=" + url.QueryEscape(msg)
}
