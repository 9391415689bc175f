package console

import (
	"context"

	"github.com/alclearn/admin-console/internal/session"
)

// loginScreen is the only entry into the protected screens. A non-staff
// account is rejected here with nothing persisted.
func (a *App) loginScreen(ctx context.Context) (route, error) {
	a.printf("\n── Sign in ──\n")
	a.printf("(type 'reset' to complete a password-reset link, 'payment' for the payment screen, 'quit' to exit)\n")

	email, err := a.prompt("Email")
	if err != nil {
		return routeQuit, err
	}
	switch email {
	case "quit", "exit":
		return routeQuit, nil
	case "reset":
		return routeReset, nil
	case "payment":
		return routePayment, nil
	}

	password, err := a.promptPassword("Password")
	if err != nil {
		return routeQuit, err
	}

	user, err := a.entry.Login(ctx, email, password)
	if err != nil {
		a.printf("%s\n", session.LoginMessage(err))
		return routeLogin, nil
	}

	a.printf("Welcome, %s.\n", user.Name)
	return routeDashboard, nil
}
