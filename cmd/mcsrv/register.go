// Package main provides the register and unregister commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcsrv/cli/internal/server"
	"github.com/mcsrv/cli/internal/ui"
)

// registerCmd adds a server directory to the registry.
var registerCmd = &cobra.Command{
	Use:   "register [path]",
	Short: "Register a server directory",
	Long: `Register a server directory (default: the current directory).

The directory must contain a launchable .jar. With several candidates
you are asked which one runs the server; the choice is stored in the
directory's .mcsrvmeta file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	deps, err := loadDeps()
	if err != nil {
		ui.PrintError("Failed to load config: %v", err)
		return err
	}

	srv, err := server.NewWithDeps(path, deps)
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	reg, err := openRegistry()
	if err != nil {
		return err
	}
	if err := reg.Register(srv); err != nil {
		ui.PrintError("%v", err)
		return err
	}

	ui.PrintSuccess("Registered %s (%s)", srv.ID(), srv.Path())
	return nil
}

// unregisterCmd removes a server from the registry.
var unregisterCmd = &cobra.Command{
	Use:   "unregister <id|path>",
	Short: "Remove a server from the registry",
	Long: `Remove a server from the registry.

The server directory and its .mcsrvmeta file are left untouched; only
the registry entry goes away.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnregister,
}

func runUnregister(cmd *cobra.Command, args []string) error {
	srv, err := resolveServer(args[0])
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		ok, err := ui.PromptConfirm(fmt.Sprintf("Unregister %s?", srv.ID()), false)
		if err != nil {
			return err
		}
		if !ok {
			ui.PrintDim("Aborted.")
			return nil
		}
	}

	reg, err := openRegistry()
	if err != nil {
		return err
	}
	if err := reg.Unregister([]string{srv.Path()}); err != nil {
		ui.PrintError("Failed to unregister: %v", err)
		return err
	}

	ui.PrintSuccess("Unregistered %s", srv.ID())
	return nil
}

func init() {
	unregisterCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
