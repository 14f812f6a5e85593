// snipman is a fast TUI snippet manager.
//
// Commands:
//   - add: create a new snippet with description, tags, and code
//   - list: print all saved snippets
//   - remove: delete a snippet by its description
//   - interactive: fuzzy-search snippets and copy one to the clipboard
//   - install: install man page and shell completions into user directories
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"snipman/internal/clip"
	"snipman/internal/config"
	"snipman/internal/domain"
	"snipman/internal/editor"
	"snipman/internal/eventbus"
	"snipman/internal/install"
	"snipman/internal/store"
	"snipman/internal/ui"
	"snipman/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	if requiresInstallGate(cmd) && !install.IsInstalled() {
		fmt.Fprintln(os.Stderr, "snipman is not initialized. Run: snipman install\n"+
			"After that, open a new shell to use completions. `man snipman` will also be available.")
		os.Exit(2)
	}

	switch cmd {
	case "add":
		addCmd(args)
	case "list":
		listCmd()
	case "remove":
		removeCmd(args)
	case "interactive":
		interactiveCmd()
	case "install":
		installCmd(args)
	case "version":
		fmt.Println(version.String())
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("snipman - fast TUI snippet manager")
	fmt.Println("usage:")
	fmt.Println("  snipman add -d <description> [-t tag,tag] [--code <s> | --file <path> | --stdin | --editor]")
	fmt.Println("  snipman list")
	fmt.Println("  snipman remove -d <description>")
	fmt.Println("  snipman interactive")
	fmt.Println("  snipman install [bash|zsh|fish|auto] [--no-modify-rc]")
	fmt.Println("  snipman version")
}

func requiresInstallGate(cmd string) bool {
	switch cmd {
	case "install", "version", "help", "-h", "--help":
		return false
	default:
		return true
	}
}

// newStore builds the snippet store from the loaded configuration
func newStore(bus eventbus.EventBus) (*store.Store, *config.Config) {
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	return store.NewWithBus(cfg.SnippetsDir, bus), cfg
}

func addCmd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	var description, tags, code, file string
	var fromStdin, fromEditor bool
	fs.StringVar(&description, "d", "", "a short, searchable description")
	fs.StringVar(&description, "description", "", "a short, searchable description")
	fs.StringVar(&tags, "t", "", `comma-separated tags, e.g. "fs,io,read"`)
	fs.StringVar(&tags, "tags", "", `comma-separated tags, e.g. "fs,io,read"`)
	fs.StringVar(&code, "code", "", "inline code (use quotes); prefer --file/--stdin/--editor for multi-line")
	fs.StringVar(&file, "file", "", "read the snippet body from a file")
	fs.BoolVar(&fromStdin, "stdin", false, "read the snippet body from stdin")
	fs.BoolVar(&fromEditor, "editor", false, "open an editor to write the snippet body")
	_ = fs.Parse(args)

	if description == "" {
		fmt.Fprintln(os.Stderr, "add: -d <description> is required")
		os.Exit(1)
	}

	body, err := resolveCodeInput(code, file, fromStdin, fromEditor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Provide snippet code via --code, --file, --stdin or --editor. Error: %v\n", err)
		os.Exit(1)
	}

	bus := eventbus.New()
	defer bus.Close()
	st, _ := newStore(bus)

	snippet := domain.NewSnippet(description, splitTags(tags), body)
	if err := st.Save(snippet); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snippet: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Snippet %q saved successfully!\n", snippet.Description)
}

// resolveCodeInput resolves the snippet body. Precedence: --code, --file,
// --stdin, --editor.
func resolveCodeInput(inline, file string, fromStdin, fromEditor bool) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if fromStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if fromEditor {
		return editor.Compose()
	}
	return "", fmt.Errorf("no code source provided")
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func listCmd() {
	bus := eventbus.New()
	defer bus.Close()
	st, _ := newStore(bus)

	snippets, err := st.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snippets: %v\n", err)
		os.Exit(1)
	}

	if len(snippets) == 0 {
		fmt.Println("No snippets found.")
		return
	}
	fmt.Printf("Found %d snippets:\n", len(snippets))
	for _, snippet := range snippets {
		fmt.Printf("- %s (Tags: %v)\n", snippet.Description, snippet.Tags)
	}
}

func removeCmd(args []string) {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	var description string
	fs.StringVar(&description, "d", "", "the description of the snippet to remove")
	fs.StringVar(&description, "description", "", "the description of the snippet to remove")
	_ = fs.Parse(args)

	if description == "" {
		fmt.Fprintln(os.Stderr, "remove: -d <description> is required")
		os.Exit(1)
	}

	bus := eventbus.New()
	defer bus.Close()
	st, _ := newStore(bus)

	snippets, err := st.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snippets: %v\n", err)
		os.Exit(1)
	}

	for _, snippet := range snippets {
		if snippet.Description == description {
			if err := st.Delete(snippet.ID); err != nil {
				fmt.Fprintf(os.Stderr, "Error deleting snippet: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Snippet %q deleted successfully.\n", description)
			return
		}
	}
	fmt.Printf("No snippet found with description %q.\n", description)
}

func interactiveCmd() {
	// The TUI owns stdout, so logs go to a file in the data root
	logPath := filepath.Join(store.DataRoot(), "snipman.log")
	if logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventSnippetDeleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SnippetDeletedEvent); ok {
			log.Printf("Snippet deleted: %q (%s)", event.Description, event.ID)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded from %s", event.Path)
		}
	})

	st, cfg := newStore(bus)

	snippets, err := st.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load snippets: %v\n", err)
		os.Exit(1)
	}

	uiModel := ui.NewModel(snippets, st, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	result := uiModel.Result()
	if result.Aborted {
		return
	}
	if !result.Selected {
		fmt.Println("No snippet selected.")
		return
	}

	if err := clip.Copy(result.Code); err != nil {
		// Recoverable: print the code so the selection is not lost
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Print(result.Code)
		if !strings.HasSuffix(result.Code, "\n") {
			fmt.Println()
		}
		return
	}
	fmt.Println("✅ Snippet copied to clipboard!")
}

func installCmd(args []string) {
	target := install.ShellAuto
	noModifyRC := false

	for _, arg := range args {
		switch {
		case arg == "--no-modify-rc":
			noModifyRC = true
		case !strings.HasPrefix(arg, "-"):
			parsed, err := install.ParseShellTarget(arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			target = parsed
		default:
			fmt.Fprintf(os.Stderr, "install: unknown flag %q\n", arg)
			os.Exit(1)
		}
	}

	if err := install.Install(target, noModifyRC); err != nil {
		fmt.Fprintf(os.Stderr, "Install failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Install completed. Open a new shell. Try: man snipman")
}
