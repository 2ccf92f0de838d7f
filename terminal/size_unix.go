//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// QueryGeometry asks the terminal behind stdout, then /dev/tty, for its size.
func QueryGeometry() Geometry {
	if g, ok := queryFd(int(os.Stdout.Fd())); ok {
		return g
	}
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return FallbackGeometry()
	}
	defer tty.Close()
	if g, ok := queryFd(int(tty.Fd())); ok {
		return g
	}
	return FallbackGeometry()
}

func queryFd(fd int) (Geometry, bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Geometry{}, false
	}
	return GeometryFromWinsize(ws.Col, ws.Row, ws.Xpixel, ws.Ypixel), true
}
