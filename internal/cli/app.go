// Package cli wires flag parsing, prompting and rendering around the scan and
// reclaim stages.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/harukidev/devsweep/internal/infra/debuglog"
	"github.com/harukidev/devsweep/internal/infra/paths"
)

// Run is the CLI entrypoint. clean is the default command, so a bare
// "devsweep" invocation reports what a clean run would do.
func Run() error {
	fs := flag.NewFlagSet("devsweep", flag.ContinueOnError)
	var configFlag string
	var noPrompt bool
	verboseFlag := envBool("DEVSWEEP_VERBOSE")
	var helpFlag bool
	fs.StringVar(&configFlag, "config", "", "override config directory")
	fs.BoolVar(&noPrompt, "no-prompt", false, "disable interactive prompt")
	fs.BoolVar(&verboseFlag, "verbose", verboseFlag, "write trace logs")
	fs.BoolVar(&verboseFlag, "v", verboseFlag, "write trace logs")
	fs.BoolVar(&helpFlag, "help", false, "show help")
	fs.BoolVar(&helpFlag, "h", false, "show help")
	fs.SetOutput(os.Stdout)
	fs.Usage = func() {
		printGlobalHelp(os.Stdout)
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	args := fs.Args()
	if helpFlag {
		if len(args) > 0 && printCommandHelp(args[0], os.Stdout) {
			return nil
		}
		printGlobalHelp(os.Stdout)
		return nil
	}
	if len(args) > 0 && args[0] == "help" {
		if len(args) > 1 && printCommandHelp(args[1], os.Stdout) {
			return nil
		}
		printGlobalHelp(os.Stdout)
		return nil
	}

	configDir, err := paths.ResolveConfigDir(configFlag)
	if err != nil {
		return err
	}
	if verboseFlag {
		if err := debuglog.Enable(configDir); err != nil {
			return err
		}
		defer func() { _ = debuglog.Close() }()
	}

	ctx := context.Background()
	if len(args) == 0 {
		return runClean(ctx, configDir, nil, noPrompt)
	}
	switch args[0] {
	case "clean":
		return runClean(ctx, configDir, args[1:], noPrompt)
	case "nuke":
		return runNuke(ctx, configDir, args[1:], noPrompt)
	case "setup":
		return runSetup(ctx, configDir, args[1:], noPrompt)
	case "version":
		printVersion(os.Stdout)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func envBool(key string) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return false
	}
	switch strings.ToLower(val) {
	case "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
