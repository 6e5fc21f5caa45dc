package demoapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/config"
	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/domain/model"
	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/repo/memory"
	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/seed"
	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/services/matching"
	"github.com/Kristobal-Khunta/lovable-swipe-match/internal/ui"
)

// App wires the in-memory stores and the matching engine behind a
// line-oriented terminal client. The client is the collaborator layer: it
// issues engine calls in response to commands and decides how results are
// shown.
type App struct {
	cfg    config.Config
	logger *zap.Logger
	engine *matching.Service

	in  io.Reader
	out io.Writer

	session   *model.Session
	candidate *model.User
}

func New(cfg config.Config, logger *zap.Logger, in io.Reader, out io.Writer) (*App, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if in == nil || out == nil {
		return nil, fmt.Errorf("app requires input and output streams")
	}

	engine := matching.NewService(matching.Dependencies{
		UserStore:    memory.NewUserStore(),
		SwipeStore:   memory.NewSwipeStore(),
		MatchStore:   memory.NewMatchStore(),
		SessionStore: memory.NewSessionStore(),
		Logger:       logger,
	})

	return &App{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		in:     in,
		out:    out,
	}, nil
}

// Engine exposes the matching service, mostly for tests.
func (a *App) Engine() *matching.Service {
	return a.engine
}

func (a *App) Run(ctx context.Context) error {
	if err := a.seedUsers(ctx); err != nil {
		return err
	}

	a.println(ui.UserList(a.engine.ListUsers(ctx)))
	a.println(ui.Help())

	scanner := bufio.NewScanner(a.in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(a.out, a.cfg.Demo.Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := a.dispatch(ctx, line); quit {
			return nil
		}
	}
}

func (a *App) seedUsers(ctx context.Context) error {
	var users []model.User
	switch {
	case a.cfg.Demo.UsersFile != "":
		loaded, err := seed.LoadFile(a.cfg.Demo.UsersFile)
		if err != nil {
			return fmt.Errorf("load users file: %w", err)
		}
		users = loaded
	case a.cfg.Demo.AutoSeed:
		users = seed.Users()
	default:
		return nil
	}

	count, err := a.engine.BulkLoadUsers(ctx, users)
	if err != nil {
		return fmt.Errorf("bulk load users: %w", err)
	}
	a.println(ui.DemoDataLoaded(count))
	return nil
}

// dispatch runs one command. The returned flag is true when the loop should
// exit.
func (a *App) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		a.println(ui.Help())
	case "users":
		a.println(ui.UserList(a.engine.ListUsers(ctx)))
	case "start":
		if len(fields) < 2 {
			a.println("usage: start <id>")
			return false
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			a.println("usage: start <id>")
			return false
		}
		a.startSession(ctx, id)
	case "next":
		a.requireSession(func(sid string) { a.showNextCandidate(ctx, sid) })
	case "like":
		a.requireSession(func(sid string) { a.swipe(ctx, sid, true) })
	case "dislike":
		a.requireSession(func(sid string) { a.swipe(ctx, sid, false) })
	case "matches":
		a.requireSession(func(sid string) { a.showMatches(ctx, sid) })
	case "reset":
		a.requireSession(func(sid string) { a.resetMatches(ctx, sid) })
	case "end":
		a.endSession(ctx)
	default:
		a.println(ui.UnknownCommand(cmd))
	}
	return false
}

func (a *App) startSession(ctx context.Context, userID int64) {
	session, err := a.engine.StartSession(ctx, userID)
	if err != nil {
		a.printError(err)
		return
	}
	a.session = &session
	a.println(ui.Welcome(session.User.FirstName))
	a.showNextCandidate(ctx, session.ID)
}

func (a *App) endSession(ctx context.Context) {
	a.engine.EndSession(ctx)
	a.session = nil
	a.candidate = nil
	a.println(ui.SessionEnded())
	a.println(ui.UserList(a.engine.ListUsers(ctx)))
}

func (a *App) showNextCandidate(ctx context.Context, sessionID string) {
	candidate, err := a.engine.NextCandidate(ctx, sessionID)
	if err != nil {
		a.printError(err)
		return
	}
	a.candidate = candidate
	if candidate == nil {
		a.println(ui.NoMoreProfiles())
		return
	}
	a.println(ui.Card(*candidate))
}

func (a *App) swipe(ctx context.Context, sessionID string, isLike bool) {
	if a.candidate == nil {
		a.println(ui.NoMoreProfiles())
		return
	}

	result, err := a.engine.Swipe(ctx, sessionID, a.candidate.ID, isLike)
	if err != nil {
		a.printError(err)
		return
	}
	if result.MatchCreated && result.MatchedWith != nil {
		a.println(ui.Matched(result.MatchedWith.FirstName))
	}
	a.showNextCandidate(ctx, sessionID)
}

func (a *App) showMatches(ctx context.Context, sessionID string) {
	items, err := a.engine.Matches(ctx, sessionID)
	if err != nil {
		a.printError(err)
		return
	}
	a.println(ui.MatchList(items))
}

func (a *App) resetMatches(ctx context.Context, sessionID string) {
	if err := a.engine.ResetMatches(ctx, sessionID); err != nil {
		a.printError(err)
		return
	}
	a.println(ui.MatchesReset())
	a.showNextCandidate(ctx, sessionID)
}

func (a *App) requireSession(fn func(sessionID string)) {
	if a.session == nil {
		a.println("no active session, pick a profile with 'start <id>'")
		return
	}
	fn(a.session.ID)
}

func (a *App) printError(err error) {
	switch {
	case errors.Is(err, matching.ErrUserNotFound):
		a.println("User not found")
	case errors.Is(err, matching.ErrInvalidSession):
		a.println("Invalid session")
	case errors.Is(err, matching.ErrDuplicateSwipe):
		a.println("Duplicate swipe")
	default:
		a.logger.Error("engine call failed", zap.Error(err))
		a.println("Something went wrong")
	}
}

func (a *App) println(msg string) {
	fmt.Fprintln(a.out, msg)
}
