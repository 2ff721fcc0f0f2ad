package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/harukidev/devsweep/internal/ui"
)

func isHelpArg(arg string) bool {
	switch strings.TrimSpace(arg) {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func printGlobalHelp(w io.Writer) {
	theme, useColor := helpTheme(w)
	fmt.Fprintln(w, "Usage: devsweep [command] [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Find stale projects and reclaim the disk they waste.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, helpSectionTitle(theme, useColor, "Commands:"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "clean", "remove regenerable directories from stale projects (default)"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "nuke", "remove entire stale projects, optionally with their GitHub remote"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "setup", "interactive wizard for roots, threshold and directory names"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "version", "print devsweep version"))
	fmt.Fprintln(w, helpCommand(theme, useColor, "help [command]", "show help for a command"))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, helpSectionTitle(theme, useColor, "Global flags:"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--config <dir>", "override config directory (default ~/.devsweep)"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--no-prompt", "disable interactive prompt; act on every candidate"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--verbose, -v", "write trace logs under the config directory"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--help, -h", "show help"))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, helpSectionTitle(theme, useColor, "Safety:"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "dry-run", "every run is a dry run unless --execute is given"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "trash", "deletions go through the system trash, never rm -rf"))
}

func printCommandHelp(cmd string, w io.Writer) bool {
	switch cmd {
	case "clean":
		printCleanHelp(w)
	case "nuke":
		printNukeHelp(w)
	case "setup":
		printSetupHelp(w)
	case "version":
		printVersion(w)
	default:
		return false
	}
	return true
}

func printCleanHelp(w io.Writer) {
	theme, useColor := helpTheme(w)
	fmt.Fprintln(w, "Usage: devsweep clean [--older-than <months>] [--younger-than <months>] [--roots <dir>]... [--execute] [--yes]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Remove dependency and build directories (node_modules, venv, ...) from")
	fmt.Fprintln(w, "projects whose last commit falls inside the age window. Projects themselves")
	fmt.Fprintln(w, "are never touched.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, helpSectionTitle(theme, useColor, "Flags:"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--older-than, -o <months>", "only projects at least this old (inclusive)"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--younger-than, -y <months>", "only projects at most this old (inclusive)"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--roots, -r <dir>", "scan root, repeatable; replaces configured roots"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--execute, -e", "actually move directories to trash (default: dry run)"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--yes", "skip the confirmation prompt"))
}

func printNukeHelp(w io.Writer) {
	theme, useColor := helpTheme(w)
	fmt.Fprintln(w, "Usage: devsweep nuke [--older-than <months>] [--younger-than <months>] [--roots <dir>]... [--github] [--execute] [--yes]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Move entire stale projects to the trash. With --github, also delete each")
	fmt.Fprintln(w, "project's GitHub repository after the local move succeeds; remote deletion")
	fmt.Fprintln(w, "always gets its own confirmation.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, helpSectionTitle(theme, useColor, "Flags:"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--older-than, -o <months>", "only projects at least this old (inclusive)"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--younger-than, -y <months>", "only projects at most this old (inclusive)"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--roots, -r <dir>", "scan root, repeatable; replaces configured roots"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--github, -g", "also delete the GitHub remote (needs gh auth)"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--execute, -e", "actually remove projects (default: dry run)"))
	fmt.Fprintln(w, helpFlag(theme, useColor, "--yes", "skip the confirmation prompts"))
}

func printSetupHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: devsweep setup")
	fmt.Fprintln(w, "  Walk through scan roots, the staleness threshold and the cleanable")
	fmt.Fprintln(w, "  directory names, then save them to the config store.")
}

func helpTheme(w io.Writer) (ui.Theme, bool) {
	theme := ui.DefaultTheme()
	if file, ok := w.(*os.File); ok {
		return theme, isatty.IsTerminal(file.Fd())
	}
	return theme, false
}

func helpSectionTitle(theme ui.Theme, useColor bool, title string) string {
	if !useColor {
		return title
	}
	return theme.SectionTitle.Render(title)
}

func helpCommand(theme ui.Theme, useColor bool, name, description string) string {
	if useColor {
		return fmt.Sprintf("  %s  %s", theme.Accent.Render(name), description)
	}
	return fmt.Sprintf("  %-30s %s", name, description)
}

func helpFlag(theme ui.Theme, useColor bool, flag, description string) string {
	if useColor {
		return fmt.Sprintf("  %s  %s", theme.Accent.Render(flag), description)
	}
	return fmt.Sprintf("  %-28s %s", flag, description)
}
