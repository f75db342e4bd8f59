package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Instruction is the fixed task prompt attached to every training record.
const Instruction = "Route the user query to the correct internal agent. Output JSON."

const reasonPrefix = "Matched intent: "

// RouteDecision is the structured label a fine-tuned router is expected to
// emit. Confidence is kept as json.Number so it serializes as "1.0" rather
// than "1", matching the wire format consumers train against.
type RouteDecision struct {
	Target     string      `json:"target"`
	Confidence json.Number `json:"confidence"`
	Reason     string      `json:"reason"`
}

// Intent extracts the intent phrase named in the decision reason.
func (d RouteDecision) Intent() (string, bool) {
	if !strings.HasPrefix(d.Reason, reasonPrefix) {
		return "", false
	}
	return strings.TrimPrefix(d.Reason, reasonPrefix), true
}

// TrainingRecord is one supervised fine-tuning example. Output holds the
// JSON-encoded RouteDecision as a string, mirroring what the model should
// produce verbatim.
type TrainingRecord struct {
	Instruction string `json:"instruction"`
	Input       string `json:"input"`
	Output      string `json:"output"`
}

// NewTrainingRecord builds a record labeling utterance with agentID,
// justified by the matched intent phrase.
func NewTrainingRecord(agentID, intent, utterance string) (TrainingRecord, error) {
	out, err := json.Marshal(RouteDecision{
		Target:     agentID,
		Confidence: "1.0",
		Reason:     reasonPrefix + intent,
	})
	if err != nil {
		return TrainingRecord{}, fmt.Errorf("encode decision: %w", err)
	}
	return TrainingRecord{
		Instruction: Instruction,
		Input:       utterance,
		Output:      string(out),
	}, nil
}

// Decision parses the record's Output back into a RouteDecision.
func (r TrainingRecord) Decision() (RouteDecision, error) {
	var d RouteDecision
	if err := json.Unmarshal([]byte(r.Output), &d); err != nil {
		return RouteDecision{}, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	return d, nil
}
