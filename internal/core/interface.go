// SPDX-License-Identifier: GPL-3.0-or-later

package core

//go:generate mockgen -destination=../mock/core/core.go -package=mock_core . Runner

// Runner executes bump and undo transactions
type Runner interface {
	Bump(req BumpRequest) (*BumpResult, error)
	Undo(req UndoRequest) (*UndoResult, error)
}
