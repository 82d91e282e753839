package move

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/board"
	"tableflip.dev/taskboard/pkg/layout"
)

func setup(t *testing.T) (*app.Service, string) {
	t.Helper()
	svc := app.New(board.Default(), nil)
	svc.Create(app.CreateInput{Title: "other"})
	return svc, svc.Create(app.CreateInput{Title: "card"}).ID
}

func TestMoveClampsToBoard(t *testing.T) {
	svc, id := setup(t)
	m := Move{ID: id, X: 5000, Y: -5000, Board: layout.Board{Width: 1200, Height: 800}, Service: svc, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("move: %v", err)
	}
	pos := svc.Get(id).Pos
	if pos.X != 1200-layout.Margin || pos.Y != -layout.CardHeight+layout.Margin {
		t.Fatalf("expected clamped position, got %v", pos)
	}
}

func TestMoveFree(t *testing.T) {
	svc, id := setup(t)
	m := Move{ID: id, X: 5000, Y: -5000, Free: true, Board: layout.Board{Width: 1200, Height: 800}, Service: svc, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("move: %v", err)
	}
	if pos := svc.Get(id).Pos; pos.X != 5000 || pos.Y != -5000 {
		t.Fatalf("expected unclamped position, got %v", pos)
	}
}

func TestMoveFront(t *testing.T) {
	svc, id := setup(t)
	m := Move{ID: svc.Tasks()[0].ID, X: 1, Y: 1, Front: true, Board: layout.Board{Width: 100, Height: 100}, Service: svc, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("move: %v", err)
	}
	if svc.Tasks()[0].Z <= svc.Get(id).Z {
		t.Fatal("expected the moved card on top")
	}
}

func TestFrontUnknownID(t *testing.T) {
	svc, _ := setup(t)
	f := Front{ID: "nope", Service: svc, Out: &bytes.Buffer{}}
	if err := f.Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	m := Move{ID: "nope", Service: svc, Out: &bytes.Buffer{}}
	if err := m.Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
