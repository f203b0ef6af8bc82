// Package notify delivers best-effort messages about orders to customers.
package notify

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
)

type Message struct {
	OrderID uuid.UUID `json:"orderId"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
}

const confirmationSubject = "Cryptocurrency Purchase Confirmation"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`Hello {{.Name}},

Thank you for your purchase! We have received your request to pay using cryptocurrency.

Order: {{.OrderNumber}}
{{range .Items}}
Product/Service: {{.Name}}
Quantity: {{.Quantity}}
Price: {{.Price}}
{{end}}
Total Amount: {{.Total}}

Please confirm the transaction so we can process your order. Once the payment is verified, you will receive a confirmation of shipment or access to the purchased service.

Thank you for your business!
`))

type confirmationData struct {
	Name        string
	OrderNumber string
	Items       []domain.OrderItem
	Total       domain.Money
}

// OrderConfirmation renders the message sent once an order has been placed.
func OrderConfirmation(order domain.Order, user domain.User) (Message, error) {
	var body bytes.Buffer

	if err := confirmationTmpl.Execute(&body, confirmationData{
		Name:        user.Name,
		OrderNumber: order.OrderNumber,
		Items:       order.Items,
		Total:       order.TotalPrice,
	}); err != nil {
		return Message{}, fmt.Errorf("confirmationTmpl.Execute: %w", err)
	}

	return Message{
		OrderID: order.ID,
		To:      user.Email,
		Subject: confirmationSubject,
		Body:    body.String(),
	}, nil
}
