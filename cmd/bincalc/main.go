package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/campkeith/bincalc"
)

const (
	appName     = "bincalc"
	historyFile = ".bincalc_history"
	prompt      = "> "
)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s [-v] mode
-v: Be verbose, print each computation step
mode: one of the following:
  s8,s16,s32,s64: Use 8,16,32,64 bit signed encoding
  u8,u16,u32,u64: Use 8,16,32,64 bit unsigned encoding
  f32,f64: Use 32 or 64 bit floating-point encoding
`, appName)
}

func main() {
	args := os.Args[1:]
	verbose := false
	if len(args) > 0 && args[0] == "-v" {
		verbose = true
		args = args[1:]
	}
	if len(args) != 1 {
		usage()
		os.Exit(1)
	}
	enc, ok := bincalc.ParseEncoding(args[0])
	if !ok {
		usage()
		os.Exit(1)
	}

	ev, err := bincalc.New(bincalc.Config{Encoding: enc, Verbose: verbose, Trace: os.Stdout})
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		os.Exit(1)
	}

	os.Exit(repl(ev))
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func repl(ev *bincalc.Evaluator) int {
	fmt.Printf("bincalc %s, %s encoding. Ctrl+D or \"exit\" to quit.\n",
		bincalc.Version, ev.Encoding())

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == "exit" {
			return 0
		}

		v, err := ev.Eval(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(bincalc.WrapErrorWithSource(err, line).Error()))
			continue
		}
		fmt.Println(v)
		ln.AppendHistory(line)
	}
}
