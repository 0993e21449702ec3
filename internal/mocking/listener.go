package mocking

// MockListener observes affirmative mocking decisions, for diagnostics and
// telemetry. It is invoked synchronously, after the decision and before the
// decision is returned; a nil listener disables notification.
type MockListener interface {
	OnMock(strategy string, target MockTarget)
}
