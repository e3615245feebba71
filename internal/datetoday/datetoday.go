package datetoday

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/lucax88x/datetoday/cmd/cli/config"
	"github.com/lucax88x/datetoday/cmd/cli/console"
	"github.com/lucax88x/datetoday/internal/clock"
	"github.com/lucax88x/datetoday/internal/command"
	"github.com/lucax88x/datetoday/internal/fifo"
	"github.com/lucax88x/datetoday/internal/locale"
	"github.com/lucax88x/datetoday/internal/metrics"
	"github.com/lucax88x/datetoday/internal/server"
	"github.com/lucax88x/datetoday/internal/sketchybar"
	"github.com/lucax88x/datetoday/internal/store"
	"github.com/lucax88x/datetoday/internal/widget"
)

type DateToday struct {
	Logger     *slog.Logger
	Config     *config.Cfg
	Clock      clock.Clock
	Locale     *locale.Locale
	Store      *store.Store
	Metrics    *metrics.Metrics
	Sketchybar *sketchybar.Display
	Widget     *widget.Widget
	Fifo       *fifo.Reader
	Server     *server.FifoServer

	mu    sync.Mutex
	state store.WidgetConfiguration
}

func NewDateToday(
	logger *slog.Logger,
	cfg *config.Cfg,
	console *console.Console,
	clock clock.Clock,
) (*DateToday, error) {
	st := store.New(logger, cfg.StatePath)

	state, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("datetoday: could not load widget state. %w", err)
	}

	localeName := state.Locale
	if cfg.Locale != "" {
		localeName = cfg.Locale
	}

	loc, err := locale.Match(localeName)
	if err != nil {
		return nil, fmt.Errorf("datetoday: %w", err)
	}

	m := metrics.New()

	var display widget.Display = console
	var bar *sketchybar.Display

	if cfg.Display == config.DisplaySketchybar {
		api := sketchybar.NewAPI(logger, command.NewCommand(logger))
		bar = sketchybar.NewDisplay(logger, api, cfg.Sketchybar.Item)
		display = bar
	}

	di := &DateToday{
		Logger:     logger,
		Config:     cfg,
		Clock:      clock,
		Locale:     loc,
		Store:      st,
		Metrics:    m,
		Sketchybar: bar,
		Widget:     widget.New(logger, clock, loc, display, m, state.Widget()),
		Fifo:       fifo.NewFifoReader(logger),
		state:      state,
	}

	di.Server = server.NewFifoServer(logger, di.Fifo, cfg.FifoPath, di.Widget, di)

	return di, nil
}

// State is the persisted configuration as it was loaded or last persisted.
func (d *DateToday) State() store.WidgetConfiguration {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// Persist writes the widget's active date format pair to the store.
func (d *DateToday) Persist() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := d.state.WithWidget(d.Widget.Configuration())

	if err := d.Store.Save(next); err != nil {
		return fmt.Errorf("datetoday: could not persist widget state. %w", err)
	}

	d.state = next

	return nil
}

var _ server.Persister = (*DateToday)(nil)
