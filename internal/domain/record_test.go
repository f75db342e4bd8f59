package domain

import (
	"errors"
	"testing"
)

func TestNewTrainingRecord(t *testing.T) {
	rec, err := NewTrainingRecord("agent_it", "vpn access", "Who handles vpn access?")
	if err != nil {
		t.Fatalf("NewTrainingRecord: %v", err)
	}
	if rec.Instruction != Instruction {
		t.Errorf("Instruction = %q, want %q", rec.Instruction, Instruction)
	}
	if rec.Input != "Who handles vpn access?" {
		t.Errorf("Input = %q", rec.Input)
	}

	// The output must match the wire format byte for byte, including the
	// "1.0" confidence literal.
	want := `{"target":"agent_it","confidence":1.0,"reason":"Matched intent: vpn access"}`
	if rec.Output != want {
		t.Errorf("Output = %s, want %s", rec.Output, want)
	}
}

func TestDecisionRoundTrip(t *testing.T) {
	rec, err := NewTrainingRecord("agent_hr", "payroll issue", "I need help with payroll issue")
	if err != nil {
		t.Fatalf("NewTrainingRecord: %v", err)
	}

	dec, err := rec.Decision()
	if err != nil {
		t.Fatalf("Decision: %v", err)
	}
	if dec.Target != "agent_hr" {
		t.Errorf("Target = %q, want agent_hr", dec.Target)
	}
	conf, err := dec.Confidence.Float64()
	if err != nil {
		t.Fatalf("Confidence.Float64: %v", err)
	}
	if conf != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", conf)
	}
	intent, ok := dec.Intent()
	if !ok {
		t.Fatalf("Intent() not recognized in reason %q", dec.Reason)
	}
	if intent != "payroll issue" {
		t.Errorf("Intent() = %q, want %q", intent, "payroll issue")
	}
}

func TestDecisionRejectsGarbage(t *testing.T) {
	rec := TrainingRecord{Output: "not json"}
	if _, err := rec.Decision(); !errors.Is(err, ErrBadRecord) {
		t.Errorf("Decision() error = %v, want ErrBadRecord", err)
	}
}

func TestRouteDecisionIntent(t *testing.T) {
	d := RouteDecision{Reason: "something else entirely"}
	if _, ok := d.Intent(); ok {
		t.Error("Intent() ok = true for unrecognized reason, want false")
	}
}
