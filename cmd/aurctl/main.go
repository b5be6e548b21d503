package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aura-workspace/aura/client"
)

var (
	apiFlag string
	yesFlag bool
	rootCmd = &cobra.Command{
		Use:   "aurctl",
		Short: "CLI client for the Aura workspace service",
	}
)

func newClient() (*client.Client, error) {
	return client.New(apiFlag, client.WithHTTPTimeout(30*time.Second))
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8990", "Workspace service base URL")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show service health and last save time",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			health, err := c.Health(ctx)
			if err != nil {
				return err
			}
			lastSave, err := c.LastSave(ctx)
			if err != nil {
				return err
			}
			if lastSave == "" {
				lastSave = "never"
			}
			fmt.Printf("health:    %s\nlast save: %s\n", health, lastSave)
			return nil
		},
	}
	rootCmd.AddCommand(statusCmd)

	getCmd := &cobra.Command{
		Use:   "get <collection>",
		Short: "Print one collection as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			raw, err := c.GetCollection(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var buf strings.Builder
			if err := jsonIndent(&buf, raw); err != nil {
				return err
			}
			fmt.Println(buf.String())
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Persist the live workspace state",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			stamp, err := c.Save(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("saved at %s\n", stamp)
			return nil
		},
	}
	rootCmd.AddCommand(saveCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup file on the service host",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			path, err := c.Export(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("backup written to %s\n", path)
			return nil
		},
	}
	rootCmd.AddCommand(exportCmd)

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the workspace with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Importing replaces ALL current data. Continue?") {
				fmt.Println("aborted")
				return nil
			}
			backup, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.Import(cmd.Context(), backup, true); err != nil {
				return err
			}
			fmt.Println("import complete, workspace reloaded")
			return nil
		},
	}
	importCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(importCmd)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all workspace data and reset defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("This permanently deletes ALL workspace data. Continue?") {
				fmt.Println("aborted")
				return nil
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.Clear(cmd.Context(), true); err != nil {
				return err
			}
			fmt.Println("workspace cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)

	undoCmd := &cobra.Command{
		Use:   "undo",
		Short: "Roll back the most recent state change",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			undone, err := c.Undo(cmd.Context())
			if err != nil {
				return err
			}
			if !undone {
				fmt.Println("nothing to undo")
				return nil
			}
			fmt.Println("undone")
			return nil
		},
	}
	rootCmd.AddCommand(undoCmd)

	focusCmd := &cobra.Command{
		Use:   "focus [minutes]",
		Short: "Start a focus session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes := 0
			if len(args) == 1 {
				if _, err := fmt.Sscanf(args[0], "%d", &minutes); err != nil {
					return fmt.Errorf("minutes must be a number: %w", err)
				}
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.StartFocus(cmd.Context(), minutes); err != nil {
				return err
			}
			status, err := c.FocusStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("focus session running, %v minutes planned\n", status["plannedMinutes"])
			return nil
		},
	}
	rootCmd.AddCommand(focusCmd)

	notifyCmd := &cobra.Command{
		Use:   "notifications",
		Short: "Print and clear pending notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			pending, err := c.Notifications(cmd.Context())
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Println("no pending notifications")
				return nil
			}
			for _, n := range pending {
				fmt.Printf("[%s] %s  %s\n", n.Level, n.Time.Format(time.RFC3339), n.Message)
			}
			return nil
		},
	}
	rootCmd.AddCommand(notifyCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// confirm prompts on stdin unless --yes was given.
func confirm(question string) bool {
	if yesFlag {
		return true
	}
	fmt.Printf("%s [y/N]: ", question)
	var answer string
	_, _ = fmt.Scanln(&answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func jsonIndent(dst *strings.Builder, raw []byte) error {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	dst.Write(out)
	return nil
}
