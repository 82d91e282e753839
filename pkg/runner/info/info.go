package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/store"
)

type Info struct {
	Config  store.Config
	Store   *store.Store
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TASKBOARD_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TASKBOARD_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "TASKBOARD_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil {
		return fmt.Errorf("failed to load the board")
	}

	faint := color.New(color.Faint)
	w, h := n.Config.BoardSize()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(faint.Sprint("backend"), n.Config.Backend())
	switch n.Config.Backend() {
	case store.BackendRedis:
		tbl.AddRow(faint.Sprint("redis"), n.Config.RedisAddr()+" "+n.Config.RedisPrefix())
	case store.BackendDisk:
		tbl.AddRow(faint.Sprint("path"), n.Config.BasePath())
	}
	key := n.Config.Key()
	if n.Store != nil {
		key = n.Store.Key()
	}
	tbl.AddRow(faint.Sprint("key"), key)
	tbl.AddRow(faint.Sprint("throttle"), n.Config.Throttle().String())
	tbl.AddRow(faint.Sprint("board"), fmt.Sprintf("%gx%g", w, h))
	_, _ = fmt.Fprintln(out, tbl)

	open, done := 0, 0
	for _, t := range n.Service.Tasks() {
		if t.Done {
			done++
		} else {
			open++
		}
	}
	_, _ = fmt.Fprintf(out, "Tasks: %d open, %d done, filter %s, next z %d\n",
		open, done, n.Service.Filter(), n.Service.NextZ())
	return nil
}
