// Package whatsapp formats enquiry text and builds the wa.me deep link.
// Opening the link is the visitor's business; nothing here performs network
// I/O and there is no delivery confirmation.
package whatsapp

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/phenrril/ritushop/internal/domain"
)

// Digits strips every non-numeric character from a contact number.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link builds https://wa.me/<digits>?text=<encoded message>.
func Link(phone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + Digits(phone) + "?text=" + encoded
}

// EnquiryMessage is the single-product enquiry sent from the detail page.
func EnquiryMessage(productName string, quantity int, attrs map[string]string) string {
	var b strings.Builder
	b.WriteString("Hi! I'm interested in:\n\n")
	fmt.Fprintf(&b, "Product: %s\n", productName)
	fmt.Fprintf(&b, "Quantity: %d\n", quantity)
	b.WriteString(attrLines(attrs, "\n"))
	b.WriteString("\n\nPlease let me know the availability and payment details.")
	return b.String()
}

// OrderMessage is the whole-cart order enquiry.
func OrderMessage(cart domain.Cart) string {
	items := make([]string, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, fmt.Sprintf("%s (%dx) - %s", l.Name, l.Quantity, attrLines(l.SelectedAttributes, ", ")))
	}
	return fmt.Sprintf("Hi! I want to order:\n\n%s\n\nTotal: ₹%s\n\nPlease confirm availability and payment details.",
		strings.Join(items, "\n"), FormatAmount(cart.Total()))
}

// FormatAmount renders a price without a trailing .00 for whole amounts.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attrLines(attrs map[string]string, sep string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+": "+attrs[k])
	}
	return strings.Join(pairs, sep)
}
