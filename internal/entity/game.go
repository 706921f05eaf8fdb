package entity

import (
	"errors"
	"fmt"
)

// Mark - the content of a cell, and the symbol a player places.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

const BoardSize = 9

// State - the phase of a single game.
type State int

const (
	StateInProgress State = iota
	StateWon
	StateDrawn
)

var (
	ErrUnknownState = errors.New("unknown game state")

	// WinCombos are checked in this order: rows, columns, main diagonal, anti-diagonal.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board - nine cells in row-major order.
type Board [BoardSize]Mark

// GameStatus - the outcome derived from a board. Winner is MarkEmpty unless State is StateWon.
type GameStatus struct {
	State  State `json:"state"`
	Winner Mark  `json:"winner,omitempty"`
}

func (that Mark) IsEmpty() bool {
	return that == MarkEmpty
}

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

// MarkForStep - X moves on even steps, O on odd ones.
func MarkForStep(step int) Mark {
	if step%2 == 0 {
		return MarkX
	}
	return MarkO
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// EvaluateWinner - returns the mark of the first fully matched line, or MarkEmpty.
func EvaluateWinner(board Board) Mark {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return a
		}
	}

	return MarkEmpty
}

func IsFull(board Board) bool {
	for _, cell := range board {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

// IsDraw - the board is full and nobody completed a line.
func IsDraw(board Board) bool {
	return EvaluateWinner(board).IsEmpty() && IsFull(board)
}

// StatusOf - classifies a board as in progress, won or drawn.
func StatusOf(board Board) GameStatus {
	if winner := EvaluateWinner(board); !winner.IsEmpty() {
		return GameStatus{State: StateWon, Winner: winner}
	}

	if IsFull(board) {
		return GameStatus{State: StateDrawn}
	}

	return GameStatus{State: StateInProgress}
}

func (that GameStatus) IsOver() bool {
	return that.State != StateInProgress
}

func (that State) String() string {
	switch that {
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateDrawn:
		return "drawn"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

func (that State) MarshalText() ([]byte, error) {
	switch that {
	case StateInProgress, StateWon, StateDrawn:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(that))
	}
}

func (that *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "in_progress":
		*that = StateInProgress
	case "won":
		*that = StateWon
	case "drawn":
		*that = StateDrawn
	default:
		return fmt.Errorf("%w: %q", ErrUnknownState, text)
	}

	return nil
}
