// Package main provides the ram and autostart property commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcsrv/cli/internal/ui"
)

// ramCmd reads or writes a server's persisted memory allocation.
var ramCmd = &cobra.Command{
	Use:   "ram <id|path> [allocation]",
	Short: "Show or set a server's memory allocation",
	Long: `Show or set a server's persisted memory allocation.

The allocation is a java -Xmx token: a number followed by a unit
letter, e.g. 4G or 512M. It takes effect on the next start.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRAM,
}

func runRAM(cmd *cobra.Command, args []string) error {
	srv, err := resolveServer(args[0])
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	if len(args) == 1 {
		fmt.Println(srv.RAM())
		return nil
	}

	if err := srv.SetRAM(args[1]); err != nil {
		ui.PrintError("%v", err)
		return err
	}

	ui.PrintSuccess("%s now starts with %sB RAM", srv.ID(), srv.RAM())
	return nil
}

// autostartCmd reads or writes a server's autostart flag.
var autostartCmd = &cobra.Command{
	Use:   "autostart <id|path> [on|off]",
	Short: "Show or set a server's autostart flag",
	Long: `Show or set a server's autostart flag.

Servers with autostart on are started by 'mcsrv boot', typically wired
to a @reboot cron entry.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAutostart,
}

func runAutostart(cmd *cobra.Command, args []string) error {
	srv, err := resolveServer(args[0])
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	if len(args) == 1 {
		if srv.Autostarts() {
			fmt.Println("on")
		} else {
			fmt.Println("off")
		}
		return nil
	}

	var enabled bool
	switch args[1] {
	case "on", "true":
		enabled = true
	case "off", "false":
		enabled = false
	default:
		err := fmt.Errorf("invalid autostart value %q (expected on or off)", args[1])
		ui.PrintError("%v", err)
		return err
	}

	if err := srv.SetAutostart(enabled); err != nil {
		ui.PrintError("Failed to save: %v", err)
		return err
	}

	if enabled {
		ui.PrintSuccess("%s will start on boot", srv.ID())
	} else {
		ui.PrintSuccess("%s will no longer start on boot", srv.ID())
	}
	return nil
}
