// Package ui renders the game as an interactive tview grid.
package ui

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	cellWidth  = 7
	cellHeight = 3
	rowSize    = 3
)

type gameUseCase interface {
	State(ctx context.Context) entity.Snapshot
	MakeTurn(ctx context.Context, cell int) (entity.Snapshot, bool)
	Undo(ctx context.Context) (entity.Snapshot, bool)
	Redo(ctx context.Context) (entity.Snapshot, bool)
	Restart(ctx context.Context) entity.Snapshot
}

// BoardUI - nine cell buttons, the history controls and the status lines.
type BoardUI struct {
	app    *tview.Application
	logger *slog.Logger
	game   gameUseCase
	colors Colors

	cells   [entity.BoardSize]*tview.Button
	restart *tview.Button
	undo    *tview.Button
	redo    *tview.Button
	status  *tview.TextView
	message *tview.TextView
	root    *tview.Flex

	// cells first, then restart, undo, redo
	focusables []*tview.Button
	focus      int
}

func NewBoard(app *tview.Application, logger *slog.Logger, game gameUseCase) *BoardUI {
	board := &BoardUI{
		app:    app,
		logger: logger.With("component", "ui"),
		game:   game,
		colors: DefaultColors,
	}

	grid := tview.NewFlex().SetDirection(tview.FlexRow)
	for row := 0; row < rowSize; row++ {
		line := tview.NewFlex().SetDirection(tview.FlexColumn)
		for col := 0; col < rowSize; col++ {
			cell := row*rowSize + col
			button := tview.NewButton("").SetSelectedFunc(func() {
				board.Play(cell)
			})
			board.cells[cell] = button
			board.focusables = append(board.focusables, button)
			line.AddItem(button, cellWidth, 0, cell == 0)
			if col < rowSize-1 {
				line.AddItem(nil, 1, 0, false)
			}
		}
		grid.AddItem(line, cellHeight, 0, row == 0)
		if row < rowSize-1 {
			grid.AddItem(nil, 1, 0, false)
		}
	}

	board.restart = tview.NewButton("Restart").SetSelectedFunc(board.Restart)
	board.undo = tview.NewButton("Undo").SetSelectedFunc(board.Undo)
	board.redo = tview.NewButton("Redo").SetSelectedFunc(board.Redo)
	board.focusables = append(board.focusables, board.restart, board.undo, board.redo)

	controls := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(board.restart, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(board.undo, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(board.redo, 0, 1, false)

	board.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	board.message = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	hint := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	hint.SetText("[dimgray]1-9[-] play  [dimgray]u[-] undo  [dimgray]r[-] redo  [dimgray]n[-] restart  [dimgray]q[-] quit")

	boardWidth := rowSize*cellWidth + rowSize - 1
	column := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(board.status, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(grid, rowSize*cellHeight+rowSize-1, 0, true).
		AddItem(nil, 1, 0, false).
		AddItem(controls, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(board.message, 2, 0, false)

	board.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(column, boardWidth+4, 0, true).
			AddItem(nil, 0, 1, false), 0, 3, true).
		AddItem(hint, 1, 0, false)
	board.root.SetBorder(true).SetTitle(" tic-tac-toe ")

	board.refresh(game.State(context.Background()))

	return board
}

// Root - the primitive to hand to the application.
func (b *BoardUI) Root() tview.Primitive {
	return b.root
}

func (b *BoardUI) Play(cell int) {
	game, accepted := b.game.MakeTurn(context.Background(), cell)
	b.logger.Debug("cell selected", "cell", cell, "accepted", accepted)
	b.refresh(game)
}

func (b *BoardUI) Undo() {
	game, _ := b.game.Undo(context.Background())
	b.refresh(game)
}

func (b *BoardUI) Redo() {
	game, _ := b.game.Redo(context.Background())
	b.refresh(game)
}

func (b *BoardUI) Restart() {
	b.refresh(b.game.Restart(context.Background()))
}

// HandleKey - application level shortcuts. Keys that are not consumed are passed on to the focused button.
func (b *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEsc:
		b.app.Stop()
		return nil
	case tcell.KeyTab, tcell.KeyRight:
		b.moveFocus(1)
		return nil
	case tcell.KeyBacktab, tcell.KeyLeft:
		b.moveFocus(-1)
		return nil
	case tcell.KeyDown:
		b.moveFocus(rowSize)
		return nil
	case tcell.KeyUp:
		b.moveFocus(-rowSize)
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch r := event.Rune(); {
	case r >= '1' && r <= '9':
		b.Play(int(r - '1'))
	case r == 'u':
		b.Undo()
	case r == 'r':
		b.Redo()
	case r == 'n':
		b.Restart()
	case r == 'q':
		b.app.Stop()
	default:
		return event
	}

	return nil
}

func (b *BoardUI) moveFocus(delta int) {
	next := b.focus + delta
	switch {
	case delta == rowSize || delta == -rowSize:
		// vertical moves stop at the edges
		if next < 0 || next >= len(b.focusables) {
			return
		}
	default:
		next = (next + len(b.focusables)) % len(b.focusables)
	}

	b.focus = next
	b.app.SetFocus(b.focusables[next])
}

func (b *BoardUI) refresh(game entity.Snapshot) {
	for idx, button := range b.cells {
		mark := game.Board[idx]
		button.SetLabel(cellLabel(idx, mark))
		button.SetLabelColor(b.colors.markColor(mark))
	}

	b.undo.SetLabelColor(b.colors.controlColor(game.CanUndo))
	b.redo.SetLabelColor(b.colors.controlColor(game.CanRedo))

	b.status.SetText(game.StatusText())
	b.message.SetText(game.GameOverText())
}

// cellLabel - the mark, or the shortcut key of an empty cell.
func cellLabel(idx int, mark entity.Mark) string {
	if mark.IsEmpty() {
		return strconv.Itoa(idx + 1)
	}

	return string(mark)
}
