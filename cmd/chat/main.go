package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"advanced-ai/internal/client"
	"advanced-ai/internal/config"
	"advanced-ai/internal/conversation"
	"advanced-ai/internal/logging"
	"advanced-ai/internal/tui"
)

var (
	serverURL   string
	model       string
	maxTokens   int
	temperature float64
	theme       string
	logFile     string
	plain       bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.LoadClient()

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with Advanced AI from the terminal",
		Long: `Opens an interactive chat against a running relay server.

When stdin is not a terminal each input line is sent as one message and the
reply is printed, e.g.:
  echo "What is a goroutine?" | chat --plain`,
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringVarP(&serverURL, "server", "s", cfg.ServerURL, "Relay server base URL")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to request (gpt-4o-mini or gpt-3.5-turbo)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Maximum reply length in tokens (50-500)")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "Creativity between 0.0 and 1.0")
	cmd.Flags().StringVar(&theme, "theme", cfg.Theme, "Color theme (dark or light)")
	cmd.Flags().StringVar(&logFile, "log-file", cfg.LogFile, "File to write client logs to")
	cmd.Flags().BoolVar(&plain, "plain", false, "Line mode without the full-screen interface")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()
	if err := logging.Setup("debug", "text", f); err != nil {
		return err
	}
	log := logging.NewLogger("chat")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := conversation.NewController(client.New(serverURL, &http.Client{}))
	applyFlags(cmd, ctrl)

	log.WithField("server", serverURL).Info("Chat client started")

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if plain || !interactive {
		return tui.RunPlain(ctx, ctrl, os.Stdin, os.Stdout)
	}

	program := tea.NewProgram(tui.New(ctx, ctrl), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal interface failed: %w", err)
	}
	return nil
}

// applyFlags pushes explicitly set flags through the controller so they get
// the same coercion as the settings panel.
func applyFlags(cmd *cobra.Command, ctrl *conversation.Controller) {
	if cmd.Flags().Changed("model") {
		ctrl.UpdateSetting(conversation.SettingModel, model)
	}
	if cmd.Flags().Changed("max-tokens") {
		ctrl.UpdateSetting(conversation.SettingMaxTokens, strconv.Itoa(maxTokens))
	}
	if cmd.Flags().Changed("temperature") {
		ctrl.UpdateSetting(conversation.SettingTemperature, strconv.FormatFloat(temperature, 'f', -1, 64))
	}
	ctrl.SetTheme(conversation.Theme(theme))
}
