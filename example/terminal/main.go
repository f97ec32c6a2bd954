// Example terminal scrolls a million rows in the terminal while keeping
// only a screenful of them mounted. The header shows the mounted index
// range and the size of the free pool.
//
//	go run ./example/terminal/ -log scroll.log
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-theft-auto/scrollview"
	"github.com/go-theft-auto/scrollview/backend/terminal"
)

const rowCount = 1_000_000

func main() {
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	if err := run(*logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logPath string) error {
	// The alternate screen owns the terminal while the program runs.
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		scrollview.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
		scrollview.SetVerbose(true)
	}

	provider := scrollview.ProviderFuncs{
		Valid: func(i int) bool { return i >= 0 && i < rowCount },
		Get: func(i int) scrollview.Item {
			b := scrollview.NewBlock(scrollview.Vec2{X: 80, Y: 1}, 0)
			b.Bind(i, rowLabel(i))
			return b
		},
		Refresh: func(it scrollview.Item, i int) {
			it.(*scrollview.Block).Bind(i, rowLabel(i))
		},
	}

	view, err := scrollview.NewRecycleView(
		scrollview.Viewport{Size: scrollview.Vec2{X: 80, Y: 24}},
		provider,
		scrollview.ScrollSensitivity(3),
		scrollview.WithOpt(scrollview.OptDragThreshold, float32(1)),
		scrollview.DecelerationRate(0.05),
	)
	if err != nil {
		return err
	}
	defer view.Destroy()

	if err := view.Initialize(0); err != nil {
		return err
	}
	return terminal.Run(view, "scrollview")
}

func rowLabel(i int) string {
	return fmt.Sprintf(" row %7d  %s", i, bar(i))
}

func bar(i int) string {
	return strings.Repeat("=", i%24)
}
