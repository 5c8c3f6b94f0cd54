package orderController

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cadefab1n/appsevenmenu/models"
)

// BuildWhatsAppMessage formats the order as the text the customer sends
// to the restaurant. Prices are rounded here, at display time only.
func BuildWhatsAppMessage(restaurant models.Restaurant, order models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Novo pedido — %s*\n", restaurant.Name)
	fmt.Fprintf(&b, "Pedido %s\n\n", order.OrderNumber)

	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %s — R$ %.2f\n", item.Quantity, item.Name, item.UnitPrice*float64(item.Quantity))
	}

	fmt.Fprintf(&b, "\nSubtotal: R$ %.2f\n", order.Subtotal)
	if order.DeliveryFee > 0 {
		fmt.Fprintf(&b, "Entrega: R$ %.2f\n", order.DeliveryFee)
	}
	if order.Discount > 0 {
		fmt.Fprintf(&b, "Desconto: R$ %.2f\n", order.Discount)
	}
	fmt.Fprintf(&b, "*Total: R$ %.2f*\n", order.Total)

	if order.CustomerName != "" {
		fmt.Fprintf(&b, "\nCliente: %s\n", order.CustomerName)
	}
	if order.CustomerPhone != "" {
		fmt.Fprintf(&b, "Telefone: %s\n", order.CustomerPhone)
	}
	if order.OrderType == "delivery" && order.CustomerAddress != "" {
		fmt.Fprintf(&b, "Endereço: %s\n", order.CustomerAddress)
	}
	if order.PaymentMethod != "" {
		fmt.Fprintf(&b, "Pagamento: %s\n", order.PaymentMethod)
	}
	if order.Notes != "" {
		fmt.Fprintf(&b, "Obs: %s\n", order.Notes)
	}

	return b.String()
}

// BuildWhatsAppLink builds the wa.me deep link that opens the chat with
// the message pre-filled.
func BuildWhatsAppLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}
