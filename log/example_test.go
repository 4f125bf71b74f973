package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/xform/log"
)

func Example() {
	logger := log.Make(os.Stdout,
		log.WithPretty(false),
		log.WithFormat(log.FormatText),
		log.WithTimeLayout("none"))

	logger.Info("scene loaded", slog.Int("objects", 3))
	logger.Debug("not shown")

	// Output:
	// level=INFO msg="scene loaded" objects=3
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithPretty(false),
		log.WithFormat(log.FormatText),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelTrace))

	logger.Trace("evaluating", slog.String("axis", "x"))

	// Output:
	// level=TRACE msg=evaluating axis=x
}
