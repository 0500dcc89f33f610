package domain

import "errors"

var ErrInvalidRecord = errors.New("invalid seed record")
var ErrDuplicateID = errors.New("duplicate record id")
var ErrUnknownMode = errors.New("unknown seed mode")
