package widget

// Session is a settings edit in progress. It starts from the active pair
// and only reaches the widget through Commit.
type Session struct {
	widget *Widget

	Pattern               string
	OrdinalSuffixPosition *int
}

func (w *Widget) Edit() *Session {
	active := w.Configuration()

	return &Session{
		widget:                w,
		Pattern:               active.Pattern,
		OrdinalSuffixPosition: active.OrdinalSuffixPosition,
	}
}

// SetPattern replaces the edited pattern. Clearing it also clears the
// suffix position.
func (s *Session) SetPattern(pattern string) {
	s.Pattern = pattern

	if pattern == "" {
		s.OrdinalSuffixPosition = nil
	}
}

func (s *Session) SetSuffixPosition(position *int) {
	if position == nil {
		s.OrdinalSuffixPosition = nil
		return
	}

	p := *position
	s.OrdinalSuffixPosition = &p
}

func (s *Session) Preview() (string, error) {
	return s.widget.Preview(s.Pattern, s.OrdinalSuffixPosition)
}

func (s *Session) Commit() (string, error) {
	return s.widget.Commit(s.Pattern, s.OrdinalSuffixPosition)
}
