package logo

import (
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
)

var logger = slog.New(
	console.NewHandler(os.Stderr, &console.HandlerOptions{Level: slog.LevelWarn}),
)

func SetLogger(l *slog.Logger) {
	logger = l
}
