package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerDoneMsg reports the outcome of an external pager run
type pagerDoneMsg struct {
	err error
}

// Pager shows snippet bodies full-screen, handing the terminal over and back
// around the run. The embedded ov pager is preferred; `less -R` is the
// fallback when ov cannot start on the current terminal.
type Pager struct {
	program *tea.Program
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// fallbackAvailable reports whether the fallback pager binary is present
func (p *Pager) fallbackAvailable() bool {
	_, err := exec.LookPath("less")
	return err == nil
}

// Show pages the given content
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Clear screen to reduce visual artifacts when returning
		fmt.Print("\x1b[2J\x1b[H")
		time.Sleep(150 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return p.runFallback(strings.NewReader(content))
	}
	root.SetConfig(pagerConfig())
	return root.Run()
}

// pagerConfig configures ov to leave the screen alone on exit so the
// restored UI is not disturbed
func pagerConfig() oviewer.Config {
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	return config
}

func (p *Pager) runFallback(r io.Reader) error {
	if !p.fallbackAvailable() {
		return fmt.Errorf("no pager available")
	}

	cmd := exec.Command("less", "-R")
	cmd.Stdin = r
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
