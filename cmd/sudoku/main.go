package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Hadenir/sudoku/audio"
	"github.com/Hadenir/sudoku/game"
	"github.com/Hadenir/sudoku/input"
	"github.com/Hadenir/sudoku/render"
	"github.com/Hadenir/sudoku/ui"
)

const (
	logDir      = "logs"
	logFileName = "sudoku.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	muteFlag  = flag.Bool("mute", false, "Disable audio feedback")
	debugFlag = flag.Bool("debug", false, "Write debug log to logs/sudoku.log")
)

// setupLogging routes the stdlib logger away from the terminal.
// Disabled: output is discarded. Enabled: logs go to a file under
// logDir, rotated once it grows past maxLogSize. Never stdout/stderr,
// which belong to the screen.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, time.Now().Format("20060102-150405")+".log")
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Restore the terminal before printing a crash, or the trace is
	// unreadable in the alternate screen buffer.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSUDOKU CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)

	var sounds game.Sounds
	if !*muteFlag {
		manager := audio.NewManager()
		if err := manager.Initialize(); err != nil {
			// Non-fatal, the game runs silent
			log.Printf("audio initialization failed: %v", err)
		} else {
			sounds = manager
			defer manager.Cleanup()
		}
	}

	session := game.NewSession(ui.Default(), sounds)
	renderer := render.NewRenderer(screen, render.DefaultTheme())
	adapter := input.NewAdapter()

	// Lazy event loop: one event is fully applied before the frame is
	// drawn, so the renderer only ever sees settled state.
	for {
		renderer.Draw(session)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
		}

		for _, nev := range adapter.Translate(ev) {
			session.HandleEvent(nev)
		}
	}
}
