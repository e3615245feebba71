package widget

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lucax88x/datetoday/internal/clock"
	"github.com/lucax88x/datetoday/internal/dateformat"
	"github.com/lucax88x/datetoday/internal/locale"
	"github.com/lucax88x/datetoday/internal/metrics"
	"github.com/lucax88x/datetoday/internal/ticker"
)

// Display is the surface the date text is rendered on. The widget calls it
// from the goroutine running Run only.
type Display interface {
	SetText(ctx context.Context, text string) error
}

const DefaultPattern = "dddd', the 'd' of 'MMMM"

// DefaultSuffixPosition puts the ordinal suffix right after the day token
// of DefaultPattern.
const DefaultSuffixPosition = 13

// Configuration is the committed pattern and ordinal suffix position pair.
type Configuration struct {
	Pattern               string
	OrdinalSuffixPosition *int
}

func DefaultConfiguration() Configuration {
	position := DefaultSuffixPosition

	return Configuration{
		Pattern:               DefaultPattern,
		OrdinalSuffixPosition: &position,
	}
}

func (c Configuration) equal(other Configuration) bool {
	if c.Pattern != other.Pattern {
		return false
	}

	if c.OrdinalSuffixPosition == nil || other.OrdinalSuffixPosition == nil {
		return c.OrdinalSuffixPosition == other.OrdinalSuffixPosition
	}

	return *c.OrdinalSuffixPosition == *other.OrdinalSuffixPosition
}

func (c Configuration) clone() Configuration {
	if c.OrdinalSuffixPosition != nil {
		position := *c.OrdinalSuffixPosition
		c.OrdinalSuffixPosition = &position
	}

	return c
}

type Widget struct {
	logger  *slog.Logger
	clock   clock.Clock
	locale  *locale.Locale
	display Display
	metrics *metrics.Metrics

	mu     sync.RWMutex
	active Configuration
	text   string

	refresh chan struct{}
}

func New(
	logger *slog.Logger,
	clock clock.Clock,
	locale *locale.Locale,
	display Display,
	metrics *metrics.Metrics,
	initial Configuration,
) *Widget {
	w := &Widget{
		logger:  logger,
		clock:   clock,
		locale:  locale,
		display: display,
		metrics: metrics,
		refresh: make(chan struct{}, 1),
	}

	text, err := w.Preview(initial.Pattern, initial.OrdinalSuffixPosition)

	if err != nil {
		logger.Warn(
			"widget: persisted date format is not valid, using default",
			slog.String("pattern", initial.Pattern),
			slog.String("condition", dateformat.Condition(err)),
			slog.Any("error", err),
		)

		initial = DefaultConfiguration()
		text, _ = w.Preview(initial.Pattern, initial.OrdinalSuffixPosition)
	}

	w.active = initial.clone()
	w.text = text

	return w
}

// Run owns the display: it renders now, then on every minute boundary and
// every Refresh, until ctx is done.
func (w *Widget) Run(ctx context.Context) error {
	minuteTicker := ticker.NewMinuteTicker(w.clock)
	defer minuteTicker.Stop()

	w.logger.InfoContext(ctx, "widget: running", slog.String("next_tick", minuteTicker.Next().Format(clock.Time)))

	w.render(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "widget: stopped")
			return nil

		case tick := <-minuteTicker.C():
			w.metrics.Ticks.Inc()
			w.logger.DebugContext(
				ctx,
				"widget: tick",
				slog.String("at", tick.Format(clock.Time)),
				slog.String("next_tick", minuteTicker.Next().Format(clock.Time)),
			)
			w.render(ctx)

		case <-w.refresh:
			w.render(ctx)
		}
	}
}

func (w *Widget) render(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.ErrorContext(ctx, "widget: recovered from panic in render", slog.Any("panic", r))
		}
	}()

	active := w.Configuration()

	text, err := dateformat.Format(active.Pattern, active.OrdinalSuffixPosition, w.clock.Now(), w.locale)

	if err != nil {
		w.metrics.FormatFailures.WithLabelValues(dateformat.Condition(err)).Inc()
		w.logger.ErrorContext(
			ctx,
			"widget: could not format date, keeping last text",
			slog.String("pattern", active.Pattern),
			slog.Any("error", err),
		)
		return
	}

	w.mu.Lock()
	if !w.active.equal(active) {
		// a commit landed meanwhile and queued its own render
		w.mu.Unlock()
		return
	}
	w.text = text
	w.mu.Unlock()

	if err := w.display.SetText(ctx, text); err != nil {
		w.metrics.DisplayErrors.Inc()
		w.logger.ErrorContext(ctx, "widget: could not update display", slog.Any("error", err))
		return
	}

	w.metrics.Renders.Inc()
}

// Refresh asks Run to render again. Requests made while one is pending
// collapse into it.
func (w *Widget) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Preview validates a candidate pair and returns the text it would show
// now. Nothing is committed.
func (w *Widget) Preview(pattern string, suffixPosition *int) (string, error) {
	return dateformat.Validate(pattern, suffixPosition, w.clock.Now(), w.locale)
}

// Commit validates a candidate pair and, only when valid, replaces the
// active pair and text together. A rejected pair leaves everything as it
// was.
func (w *Widget) Commit(pattern string, suffixPosition *int) (string, error) {
	text, err := w.Preview(pattern, suffixPosition)

	if err != nil {
		w.metrics.Commits.WithLabelValues("rejected").Inc()
		w.logger.Warn(
			"widget: rejected date format",
			slog.String("pattern", pattern),
			slog.String("condition", dateformat.Condition(err)),
			slog.Any("error", err),
		)
		return "", err
	}

	w.mu.Lock()
	w.active = Configuration{Pattern: pattern, OrdinalSuffixPosition: suffixPosition}.clone()
	w.text = text
	w.mu.Unlock()

	w.metrics.Commits.WithLabelValues("committed").Inc()
	w.logger.Info("widget: committed date format", slog.String("pattern", pattern), slog.String("text", text))

	w.Refresh()

	return text, nil
}

func (w *Widget) Configuration() Configuration {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.active.clone()
}

// Text is the last successfully formatted date text.
func (w *Widget) Text() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.text
}

