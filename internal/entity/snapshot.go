package entity

import "fmt"

const (
	drawText     = "It's a draw!"
	gameOverText = "Game Over! Press n to restart"
)

// Snapshot - a read-only view of the game handed to frontends.
type Snapshot struct {
	Board      Board      `json:"board"`
	Step       int        `json:"step"`
	HistoryLen int        `json:"history_len"`
	NextMark   Mark       `json:"next_mark"`
	Status     GameStatus `json:"status"`
	CanUndo    bool       `json:"can_undo"`
	CanRedo    bool       `json:"can_redo"`
}

// StatusText - the one-line status shown above the board.
func (that Snapshot) StatusText() string {
	switch that.Status.State {
	case StateWon:
		return fmt.Sprintf("Winner: %s", that.Status.Winner)
	case StateDrawn:
		return drawText
	default:
		return fmt.Sprintf("Next player: %s", that.NextMark)
	}
}

// GameOverText - the message shown once the game has ended, empty while it is in progress.
func (that Snapshot) GameOverText() string {
	switch that.Status.State {
	case StateWon:
		return fmt.Sprintf("Congrats Winner: %s\n%s", that.Status.Winner, gameOverText)
	case StateDrawn:
		return fmt.Sprintf("%s\n%s", drawText, gameOverText)
	default:
		return ""
	}
}
