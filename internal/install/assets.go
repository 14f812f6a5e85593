package install

import (
	"fmt"
	"time"

	"snipman/internal/version"
)

// manPage renders the snipman.1 roff source
func manPage() string {
	return fmt.Sprintf(`.TH SNIPMAN 1 "%s" "snipman %s" "User Commands"
.SH NAME
snipman \- fast TUI snippet manager
.SH SYNOPSIS
.B snipman
.I command
.RI [ options ]
.SH DESCRIPTION
snipman keeps short code snippets on disk and retrieves them through an
interactive fuzzy-search terminal interface. A selected snippet is copied to
the clipboard.
.SH COMMANDS
.TP
.B add
Add a new snippet. Requires \-d for the description; the body comes from
\-\-code, \-\-file, \-\-stdin or \-\-editor.
.TP
.B list
Print all saved snippets.
.TP
.B remove
Remove the snippet with the given description (\-d).
.TP
.B interactive
Open the interactive search TUI. Type to filter, Up/Down to navigate, Enter
to copy and exit, Ctrl+D to delete, Tab to expand the preview, Esc to quit.
.TP
.B install
Install the man page and shell completions into user directories.
.TP
.B version
Print the version.
.SH FILES
.TP
.I ~/.local/share/.snipman/snippets
Snippet storage, one JSON file per snippet.
.TP
.I ~/.config/snipman/config.toml
Configuration.
.SH SEE ALSO
.BR less (1)
`, time.Now().Format("2006-01-02"), version.Version)
}

// bashCompletion is installed as "snipman" under bash-completion/completions
func bashCompletion() string {
	return `# bash completion for snipman
_snipman() {
    local cur prev commands
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    commands="add list remove interactive install version help"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "${commands}" -- "${cur}") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        add)
            COMPREPLY=( $(compgen -W "-d -t --code --file --stdin --editor" -- "${cur}") )
            ;;
        remove)
            COMPREPLY=( $(compgen -W "-d" -- "${cur}") )
            ;;
        install)
            COMPREPLY=( $(compgen -W "bash zsh fish auto --no-modify-rc" -- "${cur}") )
            ;;
    esac
    return 0
}
complete -F _snipman snipman
`
}

// zshCompletion is installed as "_snipman" under zsh/site-functions
func zshCompletion() string {
	return `#compdef snipman

_snipman() {
    local -a commands
    commands=(
        'add:Add a new snippet'
        'list:List all snippets'
        'remove:Remove a snippet by description'
        'interactive:Open the interactive search TUI'
        'install:Install man page and shell completions'
        'version:Print the version'
        'help:Show usage'
    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    case "$words[2]" in
        add)
            _arguments '-d[description]:description:' '-t[tags]:tags:' \
                '--code[inline code]:code:' '--file[read body from file]:file:_files' \
                '--stdin[read body from stdin]' '--editor[compose body in editor]'
            ;;
        remove)
            _arguments '-d[description]:description:'
            ;;
        install)
            _arguments '1:shell:(bash zsh fish auto)' '--no-modify-rc[do not modify rc files]'
            ;;
    esac
}

_snipman "$@"
`
}

// fishCompletion is installed as snipman.fish under fish/completions
func fishCompletion() string {
	return `# fish completion for snipman
complete -c snipman -f
complete -c snipman -n '__fish_use_subcommand' -a add -d 'Add a new snippet'
complete -c snipman -n '__fish_use_subcommand' -a list -d 'List all snippets'
complete -c snipman -n '__fish_use_subcommand' -a remove -d 'Remove a snippet by description'
complete -c snipman -n '__fish_use_subcommand' -a interactive -d 'Open the interactive search TUI'
complete -c snipman -n '__fish_use_subcommand' -a install -d 'Install man page and completions'
complete -c snipman -n '__fish_use_subcommand' -a version -d 'Print the version'
complete -c snipman -n '__fish_seen_subcommand_from add' -s d -d 'Description'
complete -c snipman -n '__fish_seen_subcommand_from add' -s t -d 'Comma-separated tags'
complete -c snipman -n '__fish_seen_subcommand_from add' -l code -d 'Inline code'
complete -c snipman -n '__fish_seen_subcommand_from add' -l file -d 'Read body from file'
complete -c snipman -n '__fish_seen_subcommand_from add' -l stdin -d 'Read body from stdin'
complete -c snipman -n '__fish_seen_subcommand_from add' -l editor -d 'Compose body in editor'
complete -c snipman -n '__fish_seen_subcommand_from remove' -s d -d 'Description'
complete -c snipman -n '__fish_seen_subcommand_from install' -a 'bash zsh fish auto'
complete -c snipman -n '__fish_seen_subcommand_from install' -l no-modify-rc -d 'Do not modify rc files'
`
}
