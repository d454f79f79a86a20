package models

import "errors"

var (
	ErrOutOfBounds      = errors.New("shot out of bounds")
	ErrAlreadyTargeted  = errors.New("already targeted")
	ErrIllegalPlacement = errors.New("illegal ship placement")
	ErrInvalidArgument  = errors.New("invalid argument")
)
