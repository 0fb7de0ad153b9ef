// Package main provides the console and cmd commands.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcsrv/cli/internal/ui"
)

// consoleCmd attaches the terminal to a server's session.
var consoleCmd = &cobra.Command{
	Use:   "console <id|path>",
	Short: "Attach to a server's console",
	Long: `Attach the terminal to a server's screen session.

Detach with Ctrl-A D. Closing the server from inside the console
(e.g. by typing stop) ends the session.`,
	Args: cobra.ExactArgs(1),
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	srv, err := resolveServer(args[0])
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	running, err := srv.Running()
	if err != nil {
		return err
	}
	if !running {
		ui.PrintWarning("%s is not running", srv.ID())
		return nil
	}

	ui.PrintDim("Attaching to %s (detach with Ctrl-A D)", srv.SessionName())
	return srv.OpenConsole()
}

// cmdCmd injects a command into a server's console.
var cmdCmd = &cobra.Command{
	Use:   "cmd <id|path> <command...>",
	Short: "Send a command to a server's console",
	Long: `Send a command to a server's console.

The words after the server are joined with spaces and executed in the
server console, e.g.:

  mcsrv cmd survival say restarting in 5 minutes`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCmd,
}

func runCmd(cmd *cobra.Command, args []string) error {
	srv, err := resolveServer(args[0])
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	noEnter, _ := cmd.Flags().GetBool("no-enter")
	text := strings.Join(args[1:], " ")

	if err := srv.SendCommand(text, !noEnter); err != nil {
		ui.PrintError("Failed to send command to %s: %v", srv.ID(), err)
		return err
	}

	ui.PrintSuccess("Sent to %s: %s", srv.ID(), text)
	return nil
}

func init() {
	cmdCmd.Flags().Bool("no-enter", false, "Type the text without executing it")
}
