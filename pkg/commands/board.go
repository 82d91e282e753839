package commands

import (
	"context"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/layout"
	"tableflip.dev/taskboard/pkg/logging"
	"tableflip.dev/taskboard/pkg/store"
)

type runner interface {
	Do(ctx context.Context) error
}

// session is one loaded board for the lifetime of a command.
type session struct {
	cfg     store.Config
	store   *store.Store
	service *app.Service
}

func openSession() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel())
	s, err := store.Open(cfg, logger, store.WithWarning(storageWarning))
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, store: s, service: app.New(s.Load(), s)}, nil
}

func (s *session) board() layout.Board {
	w, h := s.cfg.BoardSize()
	return layout.Board{Width: w, Height: h}
}

// withBoard loads the board, runs the runner built from it and closes the
// store so deferred writes land before the process exits.
func withBoard(ctx context.Context, build func(s *session) runner) error {
	s, err := openSession()
	if err != nil {
		return oo.HandleError(err)
	}
	err = build(s).Do(ctx)
	if cerr := s.store.Close(); err == nil {
		err = cerr
	}
	return oo.HandleError(err)
}

func storageWarning(err error) {
	y := color.New(color.FgYellow)
	_, _ = y.Fprintf(color.Error, "warning: the board could not be saved, changes will be lost: %v\n", err)
}
