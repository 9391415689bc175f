// Package console is the interactive terminal frontend. It owns the screen
// loop: every protected screen re-runs the session guard before rendering,
// and any unknown route falls back to the dashboard.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/alclearn/admin-console/internal/api"
	"github.com/alclearn/admin-console/internal/config"
	"github.com/alclearn/admin-console/internal/dashboard"
	"github.com/alclearn/admin-console/internal/payment"
	"github.com/alclearn/admin-console/internal/session"
)

// route identifies a screen. Parameterized routes carry their argument in
// the struct, not the name.
type route struct {
	name   string
	bookID int64
}

var (
	routeLogin     = route{name: "login"}
	routeDashboard = route{name: "dashboard"}
	routePayment   = route{name: "payment"}
	routeReset     = route{name: "reset"}
	routeQuit      = route{name: "quit"}
)

func routeQuestions(bookID int64) route {
	return route{name: "questions", bookID: bookID}
}

// App wires the stores and clients behind the screen loop.
type App struct {
	cfg      *config.Config
	log      zerolog.Logger
	sessions *session.Store
	guard    *session.Guard
	entry    *session.Entry
	client   *api.Client
	payments *payment.Client
	dash     *dashboard.Store

	in  *bufio.Reader
	out io.Writer

	// sleep is swappable so tests do not wait out the redirect delay.
	sleep func(time.Duration)
}

// New assembles the console over an opened session store.
func New(cfg *config.Config, sessions *session.Store, log zerolog.Logger) *App {
	client := api.New(cfg.APIBaseURL, sessions, cfg.HTTPTimeout, log)
	payClient := api.New(cfg.PaymentBaseURL, nil, cfg.HTTPTimeout, log)

	return &App{
		cfg:      cfg,
		log:      log.With().Str("component", "console").Logger(),
		sessions: sessions,
		guard:    session.NewGuard(sessions),
		entry:    session.NewEntry(client, sessions, log),
		client:   client,
		payments: payment.New(payClient, log),
		dash:     dashboard.New(client, cfg.BannerTTL, log),
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		sleep:    time.Sleep,
	}
}

// Run drives the screen loop until the operator quits or the context ends.
func (a *App) Run(ctx context.Context) error {
	current := routeDashboard
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if current.name == routeQuit.name {
			a.printf("Goodbye.\n")
			return nil
		}

		// The guard runs before every protected screen, never only once.
		// Login, reset-confirm and payments are public surfaces.
		switch current.name {
		case routeLogin.name, routeReset.name, routePayment.name:
		default:
			if !a.guard.Allow() {
				current = routeLogin
				continue
			}
		}

		var next route
		var err error
		switch current.name {
		case "login":
			next, err = a.loginScreen(ctx)
		case "dashboard":
			next, err = a.dashboardScreen(ctx)
		case "questions":
			next, err = a.questionsScreen(ctx, current.bookID)
		case "payment":
			next, err = a.paymentScreen(ctx)
		case "reset":
			next, err = a.resetConfirmScreen(ctx)
		default:
			next = routeDashboard
		}

		switch {
		case err == nil:
			current = next
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			return nil
		case errors.Is(err, api.ErrNoSession), api.IsUnauthorized(err):
			// The token is already cleared; pause on the message, then route
			// back to the entry screen.
			a.printf("\n%s\n", api.UserMessage(err))
			a.sleep(a.cfg.RedirectDelay)
			current = routeLogin
		default:
			a.printf("\n%s\n", api.UserMessage(err))
			current = routeDashboard
		}
	}
}

// ─── Input helpers ──────────────────────────────────────────────────────────

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt reads one trimmed line.
func (a *App) prompt(label string) (string, error) {
	a.printf("%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptDefault reads one line, falling back to def when left blank.
func (a *App) promptDefault(label, def string) (string, error) {
	value, err := a.prompt(fmt.Sprintf("%s [%s]", label, def))
	if err != nil {
		return "", err
	}
	if value == "" {
		return def, nil
	}
	return value, nil
}

// promptPassword reads without echo when stdin is a terminal, and falls back
// to a plain line read otherwise (piped input in tests and scripts).
func (a *App) promptPassword(label string) (string, error) {
	a.printf("%s: ", label)
	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		a.printf("\n")
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirm asks a yes/no question. Anything but y/yes declines.
func (a *App) confirm(prompt string) bool {
	answer, err := a.prompt(prompt + " [y/N]")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// showBanner prints the dashboard banner if one is visible.
func (a *App) showBanner() {
	msg, kind, ok := a.dash.Banner.Current()
	if !ok {
		return
	}
	tag := "ok"
	if kind == dashboard.KindError {
		tag = "error"
	}
	a.printf("[%s] %s\n", tag, msg)
}
