package filter

import (
	"bytes"
	"context"
	"testing"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/board"
)

func TestFilter(t *testing.T) {
	svc := app.New(board.Default(), nil)
	svc.Create(app.CreateInput{Title: "t"})

	f := Filter{Filter: "Done", Service: svc, Out: &bytes.Buffer{}}
	if err := f.Do(context.Background()); err != nil {
		t.Fatalf("filter: %v", err)
	}
	if svc.Filter() != board.FilterDone {
		t.Fatalf("expected done, got %q", svc.Filter())
	}
	if len(svc.Filtered()) != 0 {
		t.Fatal("expected no done tasks")
	}

	f = Filter{Filter: "someday", Service: svc, Out: &bytes.Buffer{}}
	if err := f.Do(context.Background()); err == nil {
		t.Fatal("expected error for unknown filter")
	}
	if svc.Filter() != board.FilterDone {
		t.Fatal("a rejected filter must not change the saved one")
	}
}
