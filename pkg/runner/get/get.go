// Package get provides the runner logic for listing tasks.
package get

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/board"
	"tableflip.dev/taskboard/pkg/printers"
)

type Get struct {
	ShowID bool
	// Filter overrides the saved filter for this listing only.
	Filter board.Filter
	// Since keeps tasks created within this long of now; zero keeps all.
	Since   time.Duration
	Now     func() time.Time
	Service *app.Service

	JSON bool
	Out  io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no board")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	f := n.Service.Filter()
	var tasks []*board.Task
	if n.Filter != "" {
		f = n.Filter
		for _, t := range n.Service.Tasks() {
			if f.Match(t) {
				tasks = append(tasks, t)
			}
		}
	} else {
		tasks = n.Service.Filtered()
	}
	tasks = n.recent(tasks, now())

	if n.JSON {
		if tasks == nil {
			tasks = []*board.Task{}
		}
		return printers.JSON(n.Out, tasks)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out, Now: now}
	pp.TitleWithCount("Board ("+f.String()+")", len(tasks))
	pp.Board(tasks...)
	return nil
}

func (n *Get) recent(tasks []*board.Task, now time.Time) []*board.Task {
	if n.Since <= 0 {
		return tasks
	}
	cutoff := now.Add(-n.Since).UnixMilli()
	c := make([]*board.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.CreatedAt >= cutoff {
			c = append(c, t)
		}
	}
	return c
}
