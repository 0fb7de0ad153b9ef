// Package main provides the list and status commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcsrv/cli/internal/ui"
)

// listCmd prints all registered servers.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered servers",
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}
	servers, err := reg.ListServers()
	if err != nil {
		ui.PrintError("Failed to load servers: %v", err)
		return err
	}

	jsonOutput, _ := cmd.Root().PersistentFlags().GetBool("json")

	if jsonOutput {
		type serverInfo struct {
			ID        string `json:"id"`
			Path      string `json:"path"`
			Running   bool   `json:"running"`
			RAM       string `json:"ram"`
			Autostart bool   `json:"autostart"`
		}

		infos := make([]serverInfo, 0, len(servers))
		for _, srv := range servers {
			running, err := srv.Running()
			if err != nil {
				return err
			}
			infos = append(infos, serverInfo{
				ID:        srv.ID(),
				Path:      srv.Path(),
				Running:   running,
				RAM:       srv.RAM(),
				Autostart: srv.Autostarts(),
			})
		}

		data, _ := json.MarshalIndent(infos, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	if len(servers) == 0 {
		ui.PrintDim("No servers registered. Run 'mcsrv register' inside a server directory.")
		return nil
	}

	table := ui.NewTable("ID", "STATE", "RAM", "AUTOSTART", "PATH")
	for _, srv := range servers {
		running, err := srv.Running()
		if err != nil {
			return err
		}

		state := ui.DimStyle.Render("stopped")
		if running {
			state = ui.SuccessStyle.Render("running")
		}
		autostart := "off"
		if srv.Autostarts() {
			autostart = "on"
		}
		table.AddRow(srv.ID(), state, srv.RAM(), autostart, srv.Path())
	}
	table.Render()

	return nil
}

// statusCmd prints one server's state including resource usage.
var statusCmd = &cobra.Command{
	Use:   "status <id|path>",
	Short: "Show a server's state and resource usage",
	Long: `Show a server's state and resource usage.

CPU is sampled over a two second window, so this command takes a
moment when the server is running.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	srv, err := resolveServer(args[0])
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	running, err := srv.Running()
	if err != nil {
		return err
	}

	cpu, mem, err := srv.Stats()
	if err != nil {
		ui.PrintWarning("Failed to sample stats: %v", err)
	}

	jsonOutput, _ := cmd.Root().PersistentFlags().GetBool("json")
	if jsonOutput {
		out := map[string]interface{}{
			"id":        srv.ID(),
			"path":      srv.Path(),
			"running":   running,
			"ram":       srv.RAM(),
			"autostart": srv.Autostarts(),
			"cpu":       cpu,
			"memory_gb": mem,
			"session":   srv.SessionName(),
			"jar":       srv.Jar(),
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	state := ui.DimStyle.Render("stopped")
	if running {
		state = ui.SuccessStyle.Render("running")
	}

	ui.PrintInfo("%s  %s", ui.TitleStyle.Render(srv.ID()), state)
	ui.PrintDim("path:      %s", srv.Path())
	ui.PrintDim("jar:       %s", srv.Jar())
	ui.PrintDim("ram:       %s", srv.RAM())
	ui.PrintDim("autostart: %v", srv.Autostarts())
	if running {
		ui.PrintDim("session:   %s", srv.SessionName())
		ui.PrintInfo("cpu: %.1f%%  memory: %.2f GB", cpu, mem)
	}

	return nil
}
