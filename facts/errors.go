package facts

import "errors"

var (
	ErrNotFound         = errors.New("fact not found")
	ErrNoPackageManager = errors.New("no known package manager")
	ErrNoBattery        = errors.New("no battery found")
	ErrBirthTimeMissing = errors.New("filesystem does not record birth time")
)
