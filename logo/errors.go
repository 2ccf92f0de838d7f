package logo

import "errors"

var (
	ErrGraphicsUnsupported = errors.New("terminal does not support the kitty graphics protocol")
	ErrNoImagePath         = errors.New("image mode requires an image path")
	ErrEmptyImage          = errors.New("image has no pixels")
	ErrInvalidDimensions   = errors.New("invalid image dimensions")
	ErrUnknownMode         = errors.New("unknown logo mode")
)
