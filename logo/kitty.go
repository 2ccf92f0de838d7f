package logo

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/OneOfOne/xxhash"
)

const (
	kittyChunkSize = 4096
	escStart       = "\x1b_G"
	escEnd         = "\x1b\\"
	saveCursor     = "\x1b7"
	restoreCursor  = "\x1b8"
)

// Placement is where and how large the image is drawn, in cells.
type Placement struct {
	Cols    int
	Rows    int
	OffsetX int
	OffsetY int
}

// ImageID derives a stable, non-zero id from the payload so that identical
// images produce identical output.
func ImageID(payload []byte) uint32 {
	id := xxhash.Checksum32(payload)
	if id == 0 {
		id = 1
	}
	return id
}

// EncodeKitty frames a PNG payload as kitty graphics protocol commands. The
// image is transmitted and displayed in one go without moving the cursor
// (C=1) and with responses suppressed (q=2).
func EncodeKitty(payload []byte, p Placement) []byte {
	data := base64.StdEncoding.EncodeToString(payload)

	var buf bytes.Buffer
	moved := p.OffsetX != 0 || p.OffsetY != 0
	if moved {
		buf.WriteString(saveCursor)
		writeCursorMove(&buf, p.OffsetX, p.OffsetY)
	}

	first := true
	for first || len(data) > 0 {
		n := min(kittyChunkSize, len(data))
		chunk := data[:n]
		data = data[n:]
		more := 0
		if len(data) > 0 {
			more = 1
		}

		buf.WriteString(escStart)
		if first {
			fmt.Fprintf(&buf, "a=T,f=100,t=d,i=%d,c=%d,r=%d,C=1,q=2,", ImageID(payload), p.Cols, p.Rows)
			first = false
		}
		fmt.Fprintf(&buf, "m=%d;%s", more, chunk)
		buf.WriteString(escEnd)
	}

	if moved {
		buf.WriteString(restoreCursor)
	}
	return buf.Bytes()
}

func writeCursorMove(buf *bytes.Buffer, dx, dy int) {
	switch {
	case dy > 0:
		fmt.Fprintf(buf, "\x1b[%dB", dy)
	case dy < 0:
		fmt.Fprintf(buf, "\x1b[%dA", -dy)
	}
	switch {
	case dx > 0:
		fmt.Fprintf(buf, "\x1b[%dC", dx)
	case dx < 0:
		fmt.Fprintf(buf, "\x1b[%dD", -dx)
	}
}
