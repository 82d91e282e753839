// Package watch provides the runner logic for following board changes.
package watch

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/printers"
	"tableflip.dev/taskboard/pkg/store"
)

// Watch prints the board, then prints it again each time another process
// changes it, until ctx is cancelled.
type Watch struct {
	Store  *store.Store
	ShowID bool
	Out    io.Writer
	Now    func() time.Time
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not watch, no store")
	}

	events, err := n.Store.Watch(ctx)
	if err != nil {
		return err
	}

	n.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			n.render()
		}
	}
}

func (n *Watch) render() {
	svc := app.New(n.Store.Load(), nil)
	tasks := svc.Filtered()

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out, Now: n.Now}
	pp.TitleWithCount("Board ("+svc.Filter().String()+")", len(tasks))
	pp.Board(tasks...)
}
