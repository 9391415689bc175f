package console

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/alclearn/admin-console/internal/model"
	"github.com/alclearn/admin-console/internal/payment"
)

// paymentScreen creates a payment from a tokenized card source and checks
// payment status. Amounts are entered in riyals and sent in halalas.
func (a *App) paymentScreen(ctx context.Context) (route, error) {
	for {
		a.printf("\n── Payments ──\n")
		a.printf("commands: create | status <payment-id> | back | quit\n")

		line, err := a.prompt(">")
		if err != nil {
			return routeQuit, err
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "":
			continue
		case "quit", "exit":
			return routeQuit, nil
		case "back":
			return routeDashboard, nil
		case "create":
			if err := a.createPayment(ctx); err != nil {
				return routeDashboard, err
			}
		case "status":
			if arg == "" {
				a.printf("Usage: status <payment-id>\n")
				continue
			}
			p, err := a.payments.Status(ctx, arg)
			if err != nil {
				a.printf("Could not fetch the payment: %v\n", err)
				continue
			}
			a.printf("Payment %s: %s (%.2f SAR)\n", p.ID, p.Status, p.AmountInRiyals)
		default:
			a.printf("Unknown command %q.\n", cmd)
		}
	}
}

func (a *App) createPayment(ctx context.Context) error {
	amountText, err := a.prompt("Amount (SAR)")
	if err != nil {
		return nil
	}
	amount, convErr := strconv.ParseFloat(amountText, 64)
	if convErr != nil || amount <= 0 {
		a.printf("Enter a positive amount in riyals.\n")
		return nil
	}

	description, err := a.prompt("Description")
	if err != nil {
		return nil
	}
	token, err := a.prompt("Card token")
	if err != nil {
		return nil
	}
	name, err := a.prompt("Customer name")
	if err != nil {
		return nil
	}
	email, err := a.prompt("Customer email")
	if err != nil {
		return nil
	}

	// Round, don't truncate: 4.35 is not exactly representable and would
	// otherwise lose a halala.
	p, createErr := a.payments.Create(ctx, model.CreatePaymentRequest{
		Amount:        int(math.Round(amount * 100)),
		Description:   description,
		CustomerName:  name,
		CustomerEmail: email,
		Source:        model.PaymentSource{Type: "token", Token: token},
	})
	if createErr != nil {
		var failed *payment.ErrPaymentFailed
		if errors.As(createErr, &failed) {
			a.printf("The payment was declined: %s\n", failed.Message)
			return nil
		}
		a.printf("The payment could not be created: %v\n", createErr)
		return nil
	}

	a.printf("Payment %s created (%.2f SAR, %s).\n", p.ID, p.AmountInRiyals, p.Status)
	return nil
}
