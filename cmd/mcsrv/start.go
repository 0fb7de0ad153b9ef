// Package main provides the lifecycle commands: start, stop, boot.
package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mcsrv/cli/internal/server"
	"github.com/mcsrv/cli/internal/ui"
)

// startCmd launches a server inside a new detached session.
var startCmd = &cobra.Command{
	Use:   "start <id|path>",
	Short: "Start a server in a detached session",
	Long: `Start a server in a detached screen session.

The command returns immediately; the server keeps booting inside its
session. Use 'mcsrv console' to watch it, or 'mcsrv status' to check
on it.`,
	Args: cobra.ExactArgs(1),
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	srv, err := resolveServer(args[0])
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	ramOverride, _ := cmd.Flags().GetString("ram")

	if err := srv.Start(ramOverride); err != nil {
		if errors.Is(err, server.ErrAlreadyRunning) {
			ui.PrintWarning("%s is already running", srv.ID())
			return err
		}
		ui.PrintError("Failed to start %s: %v", srv.ID(), err)
		return err
	}

	ram := srv.RAM()
	if ramOverride != "" {
		ram, _ = server.NormalizeRAM(ramOverride)
	}
	ui.PrintSuccess("Started %s with %sB RAM (session %s)", srv.ID(), ram, srv.SessionName())
	return nil
}

// stopCmd asks a running server to shut down.
var stopCmd = &cobra.Command{
	Use:   "stop <id|path>",
	Short: "Stop a running server",
	Long: `Stop a running server by sending the stop command into its console.

The session ends once the server process exits; shutdown may take a
while on large worlds.`,
	Args: cobra.ExactArgs(1),
	RunE: runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
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

	if err := srv.Stop(); err != nil {
		ui.PrintError("Failed to stop %s: %v", srv.ID(), err)
		return err
	}

	ui.PrintSuccess("Asked %s to stop", srv.ID())
	return nil
}

// bootCmd starts every registered server with the autostart flag set.
// Intended to run from a @reboot cron entry or a systemd unit.
var bootCmd = &cobra.Command{
	Use:   "boot",
	Short: "Start all servers marked for autostart",
	RunE:  runBoot,
}

func runBoot(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}
	servers, err := reg.ListServers()
	if err != nil {
		ui.PrintError("Failed to load servers: %v", err)
		return err
	}

	started := 0
	for _, srv := range servers {
		if !srv.Autostarts() {
			continue
		}

		if err := srv.Start(""); err != nil {
			if errors.Is(err, server.ErrAlreadyRunning) {
				log.Debug("autostart server already running", "server", srv.ID())
				continue
			}
			ui.PrintError("Failed to start %s: %v", srv.ID(), err)
			return err
		}
		ui.PrintSuccess("Started %s", srv.ID())
		started++
	}

	if started == 0 {
		ui.PrintDim("Nothing to start.")
	}
	return nil
}

func init() {
	startCmd.Flags().String("ram", "", "Memory allocation for this start only (e.g. 4G, 512M)")
}
