package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func main() {
	var (
		demoName = flag.String("demo", "", "start on the named demo (unique prefix is enough)")
		width    = flag.Int("width", 2, "index register width")
		dumpQASM = flag.Bool("qasm", false, "print the selected demo's QASM to stdout and exit")
		listOnly = flag.Bool("list", false, "list demos and exit")
		debug    = flag.Bool("debug", false, "write debug events to qmuxview.log")
	)
	flag.Parse()

	if *listOnly {
		for _, d := range demos {
			fmt.Printf("%-26s %s\n", d.name, d.desc)
		}
		return
	}

	logger := zerolog.Nop()
	if *debug {
		f, err := os.OpenFile("qmuxview.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}

	m := newModel(logger)
	if *demoName != "" && !m.selectDemo(*demoName) {
		fmt.Fprintf(os.Stderr, "unknown demo %q (try -list)\n", *demoName)
		os.Exit(1)
	}
	m.setIndexWidth(*width)

	if *dumpQASM {
		fmt.Print(m.circ.ToQASM())
		return
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
