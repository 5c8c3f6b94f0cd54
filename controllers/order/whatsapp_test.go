package orderController

import (
	"strings"
	"testing"

	"github.com/cadefab1n/appsevenmenu/models"
)

func sampleOrder() models.Order {
	return models.Order{
		OrderNumber: "#1234",
		Items: []models.OrderItem{
			{Name: "Pizza", UnitPrice: 30, Quantity: 2},
			{Name: "Soda", UnitPrice: 5.5, Quantity: 1},
		},
		Subtotal:        65.5,
		DeliveryFee:     5,
		Total:           70.5,
		CustomerName:    "Maria",
		CustomerPhone:   "+55 11 91234-5678",
		CustomerAddress: "Rua das Flores, 7",
		PaymentMethod:   "pix",
		OrderType:       "delivery",
	}
}

func TestBuildWhatsAppMessage(t *testing.T) {
	restaurant := models.Restaurant{Name: "Pizzaria do João"}
	msg := BuildWhatsAppMessage(restaurant, sampleOrder())

	for _, want := range []string{
		"Pizzaria do João",
		"Pedido #1234",
		"2x Pizza — R$ 60.00",
		"1x Soda — R$ 5.50",
		"Subtotal: R$ 65.50",
		"Entrega: R$ 5.00",
		"*Total: R$ 70.50*",
		"Cliente: Maria",
		"Endereço: Rua das Flores, 7",
		"Pagamento: pix",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Desconto") {
		t.Error("zero discount must be omitted")
	}
}

func TestBuildWhatsAppMessagePickupOmitsAddress(t *testing.T) {
	order := sampleOrder()
	order.OrderType = "pickup"
	order.DeliveryFee = 0
	msg := BuildWhatsAppMessage(models.Restaurant{Name: "X"}, order)

	if strings.Contains(msg, "Endereço") {
		t.Error("pickup order must not carry an address line")
	}
	if strings.Contains(msg, "Entrega") {
		t.Error("zero delivery fee must be omitted")
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink("+55 (11) 91234-5678", "Olá! Pedido #1234")

	if !strings.HasPrefix(link, "https://wa.me/5511912345678?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.ContainsAny(strings.TrimPrefix(link, "https://wa.me/5511912345678?text="), " #á") {
		t.Fatalf("message not escaped: %s", link)
	}
}

func TestMapOrderStatus(t *testing.T) {
	if _, err := mapOrderStatus("Preparing"); err != nil {
		t.Errorf("known status rejected: %v", err)
	}
	if _, err := mapOrderStatus("shipped-to-mars"); err == nil {
		t.Error("unknown status accepted")
	}
}
