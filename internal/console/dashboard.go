package console

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/alclearn/admin-console/internal/api"
	"github.com/alclearn/admin-console/internal/catalog"
	"github.com/alclearn/admin-console/internal/editor"
	"github.com/alclearn/admin-console/internal/form"
	"github.com/alclearn/admin-console/internal/model"
)

// dashboardScreen lists the books and password-reset requests and hosts the
// book editor.
func (a *App) dashboardScreen(ctx context.Context) (route, error) {
	if err := a.loadDashboard(ctx); err != nil {
		return routeLogin, err
	}

	bookEditor := editor.New(
		func(d *form.BookDraft) error { return d.Validate() },
		func(ctx context.Context, d form.BookDraft, mode editor.Mode, bookID int64) error {
			return a.dash.SaveBook(ctx, d, mode, bookID)
		},
	)

	for {
		a.printf("\n── Dashboard ──\n")
		a.showBanner()
		a.renderBooks()
		a.renderResetRequests()
		a.printf("commands: open <book#> | add-book | edit-book <book#> | delete-book <book#> | handle <req#> | link <req#> | payment | refresh | logout | quit\n")

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
		case "logout":
			if err := a.entry.Logout(); err != nil {
				a.dash.Banner.ShowError(api.UserMessage(err))
				continue
			}
			a.printf("Signed out.\n")
			return routeLogin, nil
		case "payment":
			return routePayment, nil
		case "refresh":
			if err := a.loadDashboard(ctx); err != nil {
				return routeLogin, err
			}
		case "open":
			book, ok := a.bookAt(arg)
			if !ok {
				continue
			}
			return routeQuestions(book.ID), nil
		case "add-book":
			bookEditor.OpenCreate(form.BookDraft{})
			a.runBookEditor(ctx, bookEditor)
		case "edit-book":
			book, ok := a.bookAt(arg)
			if !ok {
				continue
			}
			bookEditor.OpenEdit(book.ID, form.BookToForm(book))
			a.runBookEditor(ctx, bookEditor)
		case "delete-book":
			book, ok := a.bookAt(arg)
			if !ok {
				continue
			}
			err := a.dash.DeleteBook(ctx, book.ID, book.Title, a.confirm)
			switch {
			case err == nil:
				a.dash.Banner.ShowSuccess("Book deleted.")
			case errors.Is(err, catalog.ErrDeclined):
				// Nothing happened.
			case errors.Is(err, api.ErrNoSession), api.IsUnauthorized(err):
				return routeLogin, err
			default:
				a.dash.Banner.ShowError(api.UserMessage(err))
			}
		case "link":
			req, ok := a.resetRequestAt(arg)
			if !ok {
				continue
			}
			// No clipboard on a terminal; print the link for manual copy.
			a.printf("Reset link for %s (requested %s):\n%s\n",
				req.Email, req.CreatedAt.Format("2006-01-02 15:04"), req.ResetLink)
		case "handle":
			req, ok := a.resetRequestAt(arg)
			if !ok {
				continue
			}
			if err := a.dash.MarkResetRequestHandled(ctx, req.ID); err != nil {
				if errors.Is(err, api.ErrNoSession) || api.IsUnauthorized(err) {
					return routeLogin, err
				}
				a.dash.Banner.ShowError(api.UserMessage(err))
				continue
			}
			a.dash.Banner.ShowSuccess("Marked as handled.")
		default:
			a.printf("Unknown command %q.\n", cmd)
		}
	}
}

// loadDashboard refreshes both lists. Auth failures propagate so the loop
// routes to login; anything else shows on the banner and renders what we
// have, so a flaky server cannot trap the screen in a reload loop.
func (a *App) loadDashboard(ctx context.Context) error {
	for _, load := range []func(context.Context) error{
		a.dash.LoadBooks,
		a.dash.LoadResetRequests,
	} {
		if err := load(ctx); err != nil {
			if errors.Is(err, api.ErrNoSession) || api.IsUnauthorized(err) {
				return err
			}
			a.dash.Banner.ShowError(api.UserMessage(err))
			return nil
		}
	}
	return nil
}

func (a *App) renderBooks() {
	books := a.dash.Books()
	if len(books) == 0 {
		a.printf("No books yet.\n")
		return
	}
	a.printf("Books:\n")
	for i, b := range books {
		a.printf("  %d. %s (%.2f SAR)\n", i+1, b.Title, b.PriceSAR)
	}
}

func (a *App) renderResetRequests() {
	requests := a.dash.ResetRequests()
	if len(requests) == 0 {
		return
	}
	a.printf("Password-reset requests:\n")
	for i, r := range requests {
		status := "pending"
		if r.IsHandled {
			status = "handled"
		}
		a.printf("  %d. %s (%s)\n", i+1, r.Email, status)
	}
}

// bookAt resolves a 1-based list index typed by the operator.
func (a *App) bookAt(arg string) (model.Book, bool) {
	books := a.dash.Books()
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > len(books) {
		a.printf("Pick a book number between 1 and %d.\n", len(books))
		return model.Book{}, false
	}
	return books[i-1], true
}

func (a *App) resetRequestAt(arg string) (model.PasswordResetRequest, bool) {
	requests := a.dash.ResetRequests()
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > len(requests) {
		a.printf("Pick a request number between 1 and %d.\n", len(requests))
		return model.PasswordResetRequest{}, false
	}
	return requests[i-1], true
}

// runBookEditor collects the draft fields and submits. On validation failure
// the editor stays open and the operator retries or cancels.
func (a *App) runBookEditor(ctx context.Context, ed *editor.Editor[form.BookDraft]) {
	for ed.State() == editor.StateOpen {
		draft := ed.Draft()

		title, err := a.promptDefault("Title", draft.Title)
		if err != nil {
			ed.Cancel()
			return
		}
		if title == "cancel" {
			ed.Cancel()
			a.printf("Cancelled.\n")
			return
		}
		draft.Title = title

		if draft.Description, err = a.promptDefault("Description", draft.Description); err != nil {
			ed.Cancel()
			return
		}
		if draft.PriceSAR, err = a.promptDefault("Price (SAR)", draft.PriceSAR); err != nil {
			ed.Cancel()
			return
		}

		if err := ed.Submit(ctx); err != nil {
			var ve form.ValidationError
			if errors.As(err, &ve) {
				a.printf("%s\n", ve)
				continue
			}
			ed.Cancel()
			a.dash.Banner.ShowError(api.UserMessage(err))
			return
		}
	}
	a.dash.Banner.ShowSuccess("Book saved.")
}

// splitCommand separates "edit-book 3" into verb and argument.
func splitCommand(line string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
