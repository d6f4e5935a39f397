package spheregrid

import (
	"fmt"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "drag", "fromX": 10, "fromY": 20, "toX": 30, "toY": 40, "frames": 5},
			{"action": "wait", "frames": 3},
			{"action": "hover", "x": 5, "y": 6},
			{"action": "clear"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	d := runner.steps[2]
	if d.FromX != 10 || d.FromY != 20 || d.ToX != 30 || d.ToY != 40 || d.Frames != 5 {
		t.Errorf("step 2 mismatch: %+v", d)
	}
	if runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `not json`, "parse test script"},
		{"empty steps", `{"steps": []}`, "no steps"},
		{"missing steps", `{}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "wait"}, {"action": "spin"}]}`, `step 1: unknown action "spin"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestRunnerStep_Click(t *testing.T) {
	e := mountedEngine(t, testConfig(), 20)
	top := topmost(t, e)

	data := []byte(fmt.Sprintf(`{"steps": [{"action": "click", "x": %v, "y": %v}]}`, top.ScreenX, top.ScreenY))
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	e.SetTestRunner(runner)

	// Tick 1: the click queues press+release and the press is consumed.
	e.Tick()
	if e.PendingInput() != 1 {
		t.Fatalf("expected 1 queued event, got %d", e.PendingInput())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	// Tick 2: release selects.
	e.Tick()
	if sel, ok := e.Selected(); !ok || sel.Index != top.Index {
		t.Errorf("selected = %+v, %v; want %d", sel, ok, top.Index)
	}

	// Tick 3: queue drained, runner finishes.
	e.Tick()
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_WaitAndScreenshot(t *testing.T) {
	e := mountedEngine(t, testConfig(), 5)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "a"},
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "b"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	var shots []string
	runner.Screenshot = func(label string) { shots = append(shots, label) }
	e.SetTestRunner(runner)

	for i := 0; i < 4; i++ {
		e.Tick()
	}
	if len(shots) != 1 || shots[0] != "a" {
		t.Fatalf("after 4 ticks shots = %v, want [a]", shots)
	}
	e.Tick()
	if len(shots) != 2 || shots[1] != "b" {
		t.Fatalf("after 5 ticks shots = %v, want [a b]", shots)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_NilScreenshot(t *testing.T) {
	e := mountedEngine(t, testConfig(), 5)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "x"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	e.SetTestRunner(runner)
	e.Tick()
	if !runner.Done() {
		t.Error("runner should be done after skipping the screenshot")
	}
}

func TestRunnerStep_Clear(t *testing.T) {
	e := mountedEngine(t, testConfig(), 5)
	e.Select(2)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "clear"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	e.SetTestRunner(runner)
	e.Tick()
	if _, ok := e.Selected(); ok {
		t.Error("clear step left the selection")
	}
}

func TestRunnerStep_DragRotates(t *testing.T) {
	e := mountedEngine(t, testConfig(), 5)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 100, "fromY": 100, "toX": 100, "toY": 80, "frames": 4}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	e.SetTestRunner(runner)
	for i := 0; i < 10 && !runner.Done(); i++ {
		e.Tick()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if e.Rotation().Pitch <= 0 {
		t.Errorf("upward drag left pitch at %v", e.Rotation().Pitch)
	}
}
