package reporting

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/SBOne-Kenobi/UTBotJava/api/schemas"
	"github.com/SBOne-Kenobi/UTBotJava/internal/memory"
	"github.com/SBOne-Kenobi/UTBotJava/internal/mocking"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReturnEntry is one synthesized return value in call order.
type ReturnEntry struct {
	Invocation uint64 `json:"invocation"`
	Label      string `json:"label"`
	Type       string `json:"type"`
}

// Interaction is the ordered return sequence observed for one method of one
// mocked target. Downstream stub generation replays Returns in order.
type Interaction struct {
	Target  string        `json:"target"`
	Method  string        `json:"method"`
	Returns []ReturnEntry `json:"returns"`
}

// Report summarizes the mock interactions retained from one explored path.
type Report struct {
	ClassUnderTest string `json:"class_under_test"`
	Strategy       string `json:"strategy"`
	// MockedTargets lists every target an affirmative decision was made
	// for, in decision order.
	MockedTargets []string `json:"mocked_targets"`
	// UnexpectedCount counts decisions that were tolerated but not
	// sanctioned. Callers discard or flag the path based on their policy.
	UnexpectedCount int           `json:"unexpected_count"`
	Interactions    []Interaction `json:"interactions"`
}

// RecordingListener collects affirmative mocking decisions for inclusion in
// a report. Safe for concurrent notification from parallel branches.
type RecordingListener struct {
	mu      sync.Mutex
	targets []string
}

var _ mocking.MockListener = (*RecordingListener)(nil)

// OnMock implements mocking.MockListener.
func (l *RecordingListener) OnMock(strategy string, target mocking.MockTarget) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.targets = append(l.targets, target.Key())
}

// Targets returns the recorded target keys in decision order.
func (l *RecordingListener) Targets() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.targets...)
}

// BuildReport assembles a report from a path's update log and the targets
// recorded by the listener. unexpected is the caller's count of decisions
// classified as unexpected along the path.
func BuildReport(
	classUnderTest schemas.ClassId,
	strategyName string,
	log memory.UpdateLog,
	mockedTargets []string,
	unexpected int,
) Report {
	type key struct {
		target string
		method schemas.MethodId
	}
	grouped := make(map[key][]ReturnEntry)
	for _, inv := range log.All() {
		k := key{target: inv.TargetKey, method: inv.Method}
		grouped[k] = append(grouped[k], ReturnEntry{
			Invocation: inv.Number,
			Label:      inv.Value.Label,
			Type:       inv.Value.Type.Name,
		})
	}

	interactions := make([]Interaction, 0, len(grouped))
	for k, returns := range grouped {
		interactions = append(interactions, Interaction{
			Target:  k.target,
			Method:  k.method.Signature(),
			Returns: returns,
		})
	}
	sort.Slice(interactions, func(i, j int) bool {
		if interactions[i].Target != interactions[j].Target {
			return interactions[i].Target < interactions[j].Target
		}
		return interactions[i].Method < interactions[j].Method
	})

	return Report{
		ClassUnderTest:  classUnderTest.Name,
		Strategy:        strategyName,
		MockedTargets:   mockedTargets,
		UnexpectedCount: unexpected,
		Interactions:    interactions,
	}
}

// WriteJSON renders the report as indented JSON to w.
func WriteJSON(w io.Writer, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling mock interaction report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing mock interaction report: %w", err)
	}
	return nil
}
