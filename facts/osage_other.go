//go:build !linux

package facts

import "time"

func birthTime(string) (time.Time, error) {
	return time.Time{}, ErrBirthTimeMissing
}
