package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrLocationInUse      = errors.New("cannot remove a physical location already in use by a registered asset")
	ErrInvalidCredentials = errors.New("invalid credentials or inactive user")
)

var (
	ErrAssetNotFound    = fmt.Errorf("asset %w", ErrNotFound)
	ErrLocationNotFound = fmt.Errorf("location %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
)
