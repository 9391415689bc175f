package console

import (
	"context"
	"errors"
	"strconv"

	"github.com/alclearn/admin-console/internal/api"
	"github.com/alclearn/admin-console/internal/catalog"
	"github.com/alclearn/admin-console/internal/editor"
	"github.com/alclearn/admin-console/internal/form"
	"github.com/alclearn/admin-console/internal/model"
)

// questionsScreen manages one book's questions across the four kinds. Each
// kind gets its own editor; a failed submit keeps the draft so the operator
// can fix and retry.
func (a *App) questionsScreen(ctx context.Context, bookID int64) (route, error) {
	store := catalog.New(a.client, bookID, a.log)
	if err := store.Load(ctx); err != nil {
		if api.IsNotFound(err) {
			a.printf("%s\n", catalog.LoadMessage(err))
			return routeDashboard, nil
		}
		return routeDashboard, err
	}

	mcqEd := editor.New(
		func(d *form.MCQDraft) error { return d.Validate() },
		store.SaveMCQ,
	)
	matchEd := editor.New(
		func(d *form.MatchingDraft) error { return d.Validate() },
		store.SaveMatching,
	)
	tfEd := editor.New(
		func(d *form.TrueFalseDraft) error { return d.Validate() },
		store.SaveTrueFalse,
	)
	readEd := editor.New(
		func(d *form.ReadingDraft) error { return d.Validate() },
		store.SaveReading,
	)

	for {
		a.printf("\n── %s (%d questions) ──\n", store.BookTitle(), store.Total())
		a.renderBuckets(store)
		a.printf("commands: add <mcq|match|tf|read> | edit <kind> <#> | delete <kind> <#> | refresh | back | quit\n")

		line, err := a.prompt(">")
		if err != nil {
			return routeQuit, err
		}
		cmd, rest := splitCommand(line)
		kind, arg := splitCommand(rest)

		switch cmd {
		case "":
			continue
		case "quit", "exit":
			return routeQuit, nil
		case "back":
			return routeDashboard, nil
		case "refresh":
			if err := store.Load(ctx); err != nil {
				return routeDashboard, err
			}
		case "add":
			if err := a.addQuestion(ctx, kind, mcqEd, matchEd, tfEd, readEd); err != nil {
				return routeDashboard, err
			}
		case "edit":
			if err := a.editQuestion(ctx, store, kind, arg, mcqEd, matchEd, tfEd, readEd); err != nil {
				return routeDashboard, err
			}
		case "delete":
			if err := a.deleteQuestion(ctx, store, kind, arg); err != nil {
				return routeDashboard, err
			}
		default:
			a.printf("Unknown command %q.\n", cmd)
		}
	}
}

func (a *App) renderBuckets(store *catalog.Store) {
	if mcq := store.MCQ(); len(mcq) > 0 {
		a.printf("Multiple choice:\n")
		for i, q := range mcq {
			a.printf("  %d. %s (answer: %s)\n", i+1, q.Text, q.CorrectAnswer)
		}
	}
	if matching := store.Matching(); len(matching) > 0 {
		a.printf("Matching:\n")
		for i, q := range matching {
			a.printf("  %d. %s (%d pairs)\n", i+1, q.Text, len(q.Pairs))
		}
	}
	if tf := store.TrueFalse(); len(tf) > 0 {
		a.printf("True/false:\n")
		for i, q := range tf {
			a.printf("  %d. %s (%t)\n", i+1, q.Text, q.IsTrue)
		}
	}
	if passages := store.Passages(); len(passages) > 0 {
		a.printf("Reading passages:\n")
		for i, p := range passages {
			a.printf("  %d. %s (%d questions)\n", i+1, p.Title, len(p.Questions))
		}
	}
}

func (a *App) addQuestion(
	ctx context.Context,
	kind string,
	mcqEd *editor.Editor[form.MCQDraft],
	matchEd *editor.Editor[form.MatchingDraft],
	tfEd *editor.Editor[form.TrueFalseDraft],
	readEd *editor.Editor[form.ReadingDraft],
) error {
	switch kind {
	case "mcq":
		mcqEd.OpenCreate(form.NewMCQDraft())
		return a.runMCQEditor(ctx, mcqEd)
	case "match":
		matchEd.OpenCreate(form.NewMatchingDraft())
		return a.runMatchingEditor(ctx, matchEd)
	case "tf":
		tfEd.OpenCreate(form.NewTrueFalseDraft())
		return a.runTrueFalseEditor(ctx, tfEd)
	case "read":
		readEd.OpenCreate(form.NewReadingDraft())
		return a.runReadingEditor(ctx, readEd)
	default:
		a.printf("Pick a kind: mcq, match, tf or read.\n")
		return nil
	}
}

func (a *App) editQuestion(
	ctx context.Context,
	store *catalog.Store,
	kind, arg string,
	mcqEd *editor.Editor[form.MCQDraft],
	matchEd *editor.Editor[form.MatchingDraft],
	tfEd *editor.Editor[form.TrueFalseDraft],
	readEd *editor.Editor[form.ReadingDraft],
) error {
	switch kind {
	case "mcq":
		item, ok := itemAt(a, store.MCQ(), arg)
		if !ok {
			return nil
		}
		mcqEd.OpenEdit(item.ID, form.MCQToForm(item))
		return a.runMCQEditor(ctx, mcqEd)
	case "match":
		item, ok := itemAt(a, store.Matching(), arg)
		if !ok {
			return nil
		}
		matchEd.OpenEdit(item.ID, form.MatchingToForm(item))
		return a.runMatchingEditor(ctx, matchEd)
	case "tf":
		item, ok := itemAt(a, store.TrueFalse(), arg)
		if !ok {
			return nil
		}
		tfEd.OpenEdit(item.ID, form.TrueFalseToForm(item))
		return a.runTrueFalseEditor(ctx, tfEd)
	case "read":
		item, ok := itemAt(a, store.Passages(), arg)
		if !ok {
			return nil
		}
		readEd.OpenEdit(item.ID, form.ReadingToForm(item))
		return a.runReadingEditor(ctx, readEd)
	default:
		a.printf("Pick a kind: mcq, match, tf or read.\n")
		return nil
	}
}

func (a *App) deleteQuestion(ctx context.Context, store *catalog.Store, kind, arg string) error {
	var err error
	switch kind {
	case "mcq":
		item, ok := itemAt(a, store.MCQ(), arg)
		if !ok {
			return nil
		}
		err = store.DeleteMCQ(ctx, item.ID, item.Text, a.confirm)
	case "match":
		item, ok := itemAt(a, store.Matching(), arg)
		if !ok {
			return nil
		}
		err = store.DeleteMatching(ctx, item.ID, item.Text, a.confirm)
	case "tf":
		item, ok := itemAt(a, store.TrueFalse(), arg)
		if !ok {
			return nil
		}
		err = store.DeleteTrueFalse(ctx, item.ID, item.Text, a.confirm)
	case "read":
		item, ok := itemAt(a, store.Passages(), arg)
		if !ok {
			return nil
		}
		err = store.DeleteReading(ctx, item.ID, item.Title, a.confirm)
	default:
		a.printf("Pick a kind: mcq, match, tf or read.\n")
		return nil
	}

	switch {
	case err == nil:
		a.printf("Deleted.\n")
		return nil
	case errors.Is(err, catalog.ErrDeclined):
		return nil
	case errors.Is(err, catalog.ErrAlreadyDeleted):
		a.printf("The item was already gone; the list has been refreshed.\n")
		return nil
	case errors.Is(err, api.ErrNoSession), api.IsUnauthorized(err):
		return err
	default:
		a.printf("%s\n", api.UserMessage(err))
		return nil
	}
}

// itemAt resolves a 1-based index over any bucket slice.
func itemAt[T any](a *App, items []T, arg string) (T, bool) {
	var zero T
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > len(items) {
		a.printf("Pick a number between 1 and %d.\n", len(items))
		return zero, false
	}
	return items[i-1], true
}

// submitOrRetry drives one submit attempt; validation failures keep the
// editor open for another pass, API auth failures propagate to the loop.
func submitOrRetry(a *App, ctx context.Context, submit func(context.Context) error, cancel func()) (retry bool, err error) {
	if err := submit(ctx); err != nil {
		var ve form.ValidationError
		if errors.As(err, &ve) {
			a.printf("%s\n", ve)
			return true, nil
		}
		if errors.Is(err, api.ErrNoSession) || api.IsUnauthorized(err) {
			cancel()
			return false, err
		}
		cancel()
		a.printf("%s\n", api.UserMessage(err))
		return false, nil
	}
	a.printf("Saved.\n")
	return false, nil
}

// ─── Per-kind draft collection ──────────────────────────────────────────────

func (a *App) runMCQEditor(ctx context.Context, ed *editor.Editor[form.MCQDraft]) error {
	for ed.State() == editor.StateOpen {
		draft := ed.Draft()

		text, err := a.promptDefault("Question", draft.Text)
		if err != nil || text == "cancel" {
			ed.Cancel()
			return nil
		}
		draft.Text = text

		if err := a.promptDifficulty(&draft.Difficulty); err != nil {
			ed.Cancel()
			return nil
		}

		for i := range draft.Choices {
			choice, err := a.promptDefault(
				"Choice "+strconv.Itoa(i+1), draft.Choices[i].Text)
			if err != nil {
				ed.Cancel()
				return nil
			}
			draft.Choices[i].Text = choice
		}
		if a.confirm("Add another choice?") {
			draft.AddChoice()
			continue
		}

		answer, err := a.prompt("Correct choice #")
		if err != nil {
			ed.Cancel()
			return nil
		}
		if i, convErr := strconv.Atoi(answer); convErr == nil && i >= 1 && i <= len(draft.Choices) {
			draft.SetCorrect(i - 1)
		}

		retry, err := submitOrRetry(a, ctx, ed.Submit, ed.Cancel)
		if err != nil {
			return err
		}
		if !retry {
			return nil
		}
	}
	return nil
}

func (a *App) runMatchingEditor(ctx context.Context, ed *editor.Editor[form.MatchingDraft]) error {
	for ed.State() == editor.StateOpen {
		draft := ed.Draft()

		text, err := a.promptDefault("Question", draft.Text)
		if err != nil || text == "cancel" {
			ed.Cancel()
			return nil
		}
		draft.Text = text

		if err := a.promptDifficulty(&draft.Difficulty); err != nil {
			ed.Cancel()
			return nil
		}

		for i := range draft.Pairs {
			left, err := a.promptDefault(
				"Pair "+draft.Pairs[i].MatchKey+" left", draft.Pairs[i].LeftItem)
			if err != nil {
				ed.Cancel()
				return nil
			}
			right, err := a.promptDefault(
				"Pair "+draft.Pairs[i].MatchKey+" right", draft.Pairs[i].RightItem)
			if err != nil {
				ed.Cancel()
				return nil
			}
			draft.Pairs[i].LeftItem = left
			draft.Pairs[i].RightItem = right
		}
		if a.confirm("Add another pair?") {
			draft.AddPair()
			continue
		}

		retry, err := submitOrRetry(a, ctx, ed.Submit, ed.Cancel)
		if err != nil {
			return err
		}
		if !retry {
			return nil
		}
	}
	return nil
}

func (a *App) runTrueFalseEditor(ctx context.Context, ed *editor.Editor[form.TrueFalseDraft]) error {
	for ed.State() == editor.StateOpen {
		draft := ed.Draft()

		text, err := a.promptDefault("Statement", draft.Text)
		if err != nil || text == "cancel" {
			ed.Cancel()
			return nil
		}
		draft.Text = text

		if err := a.promptDifficulty(&draft.Difficulty); err != nil {
			ed.Cancel()
			return nil
		}
		draft.IsTrue = a.confirm("Is the statement true?")

		retry, err := submitOrRetry(a, ctx, ed.Submit, ed.Cancel)
		if err != nil {
			return err
		}
		if !retry {
			return nil
		}
	}
	return nil
}

func (a *App) runReadingEditor(ctx context.Context, ed *editor.Editor[form.ReadingDraft]) error {
	for ed.State() == editor.StateOpen {
		draft := ed.Draft()

		title, err := a.promptDefault("Passage title", draft.Title)
		if err != nil || title == "cancel" {
			ed.Cancel()
			return nil
		}
		draft.Title = title

		if draft.Content, err = a.promptDefault("Passage content", draft.Content); err != nil {
			ed.Cancel()
			return nil
		}
		if err := a.promptDifficulty(&draft.Difficulty); err != nil {
			ed.Cancel()
			return nil
		}

		for qi := range draft.Questions {
			q := &draft.Questions[qi]
			question, err := a.promptDefault("Question "+strconv.Itoa(qi+1), q.Question)
			if err != nil {
				ed.Cancel()
				return nil
			}
			q.Question = question

			for ci := range q.Choices {
				choice, err := a.promptDefault(
					"  Choice "+strconv.Itoa(ci+1), q.Choices[ci])
				if err != nil {
					ed.Cancel()
					return nil
				}
				// SetChoice clears a stale correct answer when its text changes.
				draft.SetChoice(qi, ci, choice)
			}

			a.printf("  Answer options: %v\n", draft.AnswerOptions(qi))
			answer, err := a.promptDefault("  Correct answer", q.CorrectAnswer)
			if err != nil {
				ed.Cancel()
				return nil
			}
			q.CorrectAnswer = answer
		}
		if a.confirm("Add another question?") {
			draft.AddQuestion()
			continue
		}

		retry, err := submitOrRetry(a, ctx, ed.Submit, ed.Cancel)
		if err != nil {
			return err
		}
		if !retry {
			return nil
		}
	}
	return nil
}

func (a *App) promptDifficulty(d *model.Difficulty) error {
	value, err := a.promptDefault("Difficulty (easy/medium/hard)", string(*d))
	if err != nil {
		return err
	}
	switch model.Difficulty(value) {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
		*d = model.Difficulty(value)
	default:
		a.printf("Keeping %s.\n", *d)
	}
	return nil
}
