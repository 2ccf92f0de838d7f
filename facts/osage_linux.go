//go:build linux

package facts

import (
	"time"

	"golang.org/x/sys/unix"
)

func birthTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err != nil {
		return time.Time{}, err
	}
	if stx.Mask&unix.STATX_BTIME == 0 || stx.Btime.Sec <= 0 {
		return time.Time{}, ErrBirthTimeMissing
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
