package root

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/o0x0o/pigment/pkg/app"
	"github.com/o0x0o/pigment/pkg/appearance"
	"github.com/o0x0o/pigment/pkg/themes"
	"github.com/o0x0o/pigment/pkg/tui"
)

// runTUICommand starts the interactive preview: registry, app shell, the
// appearance controller, then the bubbletea program.
func runTUICommand(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	registry := themes.NewRegistry()
	defer registry.Close()

	a := app.New(registry)

	_, span := otel.Tracer("pigment").Start(ctx, "appearance.init")
	appearance.Init(a)
	span.End()

	m := tui.New(a)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	go a.Subscribe(ctx, p)

	_, err := p.Run()
	return err
}
