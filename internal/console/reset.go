package console

import (
	"context"
	"errors"

	"github.com/alclearn/admin-console/internal/api"
	"github.com/alclearn/admin-console/internal/form"
)

// resetConfirmScreen completes a password-reset link. It is public: the
// user ID and token from the emailed link are the authorization.
func (a *App) resetConfirmScreen(ctx context.Context) (route, error) {
	a.printf("\n── Reset password ──\n")

	userID, err := a.prompt("User ID from the link")
	if err != nil {
		return routeQuit, err
	}
	if userID == "" || userID == "cancel" {
		return routeLogin, nil
	}
	token, err := a.prompt("Token from the link")
	if err != nil {
		return routeQuit, err
	}

	for {
		draft := form.ResetPasswordDraft{}
		if draft.Password, err = a.promptPassword("New password"); err != nil {
			return routeQuit, err
		}
		if draft.Confirm, err = a.promptPassword("Confirm password"); err != nil {
			return routeQuit, err
		}

		if err := draft.Validate(); err != nil {
			a.printf("%s\n", err)
			continue
		}

		if err := a.entry.ConfirmPasswordReset(ctx, userID, token, draft.Password); err != nil {
			if api.IsBadRequest(err) {
				a.printf("The reset link is invalid or has expired.\n")
				return routeLogin, nil
			}
			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				a.printf("%s\n", api.UserMessage(err))
				return routeLogin, nil
			}
			a.printf("The reset could not be completed: %v\n", err)
			return routeLogin, nil
		}

		a.printf("Password updated. Taking you to sign-in…\n")
		a.sleep(a.cfg.RedirectDelay)
		return routeLogin, nil
	}
}
