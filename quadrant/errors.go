package quadrant

import "errors"

var (
	ErrUnsupportedDimension = errors.New("quadrant: dimension must be 2 or 3")
	ErrLevelOutOfRange      = errors.New("quadrant: level out of range")
)
