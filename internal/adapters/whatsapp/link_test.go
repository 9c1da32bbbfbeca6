package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phenrril/ritushop/internal/domain"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "919876543210", Digits("+91 98765 43210"))
	assert.Equal(t, "5551234", Digits("(555) 123-4"))
	assert.Equal(t, "", Digits("no number"))
}

func TestLinkEncodesSpacesAsPercent20(t *testing.T) {
	link := Link("+91 98765 43210", "Hi! I'm interested in: Rose Lipstick")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
	assert.NotContains(t, link[len("https://wa.me/919876543210?text="):], " ")
}

func TestEnquiryMessage(t *testing.T) {
	msg := EnquiryMessage("Rose Lipstick", 2, map[string]string{"Size": "Small", "Color": "Red"})

	assert.Contains(t, msg, "Hi! I'm interested in:")
	assert.Contains(t, msg, "Product: Rose Lipstick")
	assert.Contains(t, msg, "Quantity: 2")
	// attributes come out in stable alphabetical order
	assert.Contains(t, msg, "Color: Red\nSize: Small")
	assert.Contains(t, msg, "Please let me know the availability and payment details.")
}

func TestOrderMessage(t *testing.T) {
	cart := domain.Cart{Lines: []domain.CartLine{
		{Name: "Rose Lipstick", Price: 299, Quantity: 2, SelectedAttributes: map[string]string{"Color": "Red"}},
		{Name: "Face Serum", Price: 549.5, Quantity: 1},
	}}

	msg := OrderMessage(cart)

	assert.Contains(t, msg, "Hi! I want to order:")
	assert.Contains(t, msg, "Rose Lipstick (2x) - Color: Red")
	assert.Contains(t, msg, "Face Serum (1x)")
	assert.Contains(t, msg, "Total: ₹1147.5")
	assert.Contains(t, msg, "Please confirm availability and payment details.")
}

func TestFormatAmountDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "300", FormatAmount(300))
	assert.Equal(t, "299.5", FormatAmount(299.5))
}
