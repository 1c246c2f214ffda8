// Package domain holds the precheck questionnaire model and its invariants.
package domain

import (
	"fmt"
	"strings"
)

// MinFreeTextLen is the minimum length for the two free-text answers
// before the client allows a submission.
const MinFreeTextLen = 10

// Answers carries the six questionnaire fields exactly as typed by the
// visitor. Values are submitted once and discarded; nothing is persisted.
type Answers struct {
	HoursAlone   string
	BiteHandling string
	Routine      string
	HasPets      string
	SleepPlace   string
	BackupCare   string
}

// Normalized returns a copy with surrounding whitespace trimmed from
// every field.
func (a Answers) Normalized() Answers {
	return Answers{
		HoursAlone:   strings.TrimSpace(a.HoursAlone),
		BiteHandling: strings.TrimSpace(a.BiteHandling),
		Routine:      strings.TrimSpace(a.Routine),
		HasPets:      strings.TrimSpace(a.HasPets),
		SleepPlace:   strings.TrimSpace(a.SleepPlace),
		BackupCare:   strings.TrimSpace(a.BackupCare),
	}
}

// Missing lists the names of empty fields. The evaluation never reaches
// the oracle while this is non-empty.
func (a Answers) Missing() []string {
	n := a.Normalized()
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"hoursAlone", n.HoursAlone},
		{"biteHandling", n.BiteHandling},
		{"routine", n.Routine},
		{"hasPets", n.HasPets},
		{"sleepPlace", n.SleepPlace},
		{"backupCare", n.BackupCare},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// SubmitBlockers returns the visitor-facing reasons the form is not ready
// to submit. Stricter than Missing: the free-text answers must also reach
// MinFreeTextLen.
func (a Answers) SubmitBlockers() []string {
	n := a.Normalized()
	var reasons []string
	if n.HoursAlone == "" {
		reasons = append(reasons, "elige cuántas horas estaría sola")
	}
	if len(n.BiteHandling) < MinFreeTextLen {
		reasons = append(reasons, fmt.Sprintf("describe mejor el manejo del mordisqueo (mín. %d)", MinFreeTextLen))
	}
	if len(n.Routine) < MinFreeTextLen {
		reasons = append(reasons, fmt.Sprintf("detalla la rutina (mín. %d)", MinFreeTextLen))
	}
	if n.HasPets == "" {
		reasons = append(reasons, "indica si convive con otras mascotas")
	}
	if n.SleepPlace == "" {
		reasons = append(reasons, "cuéntanos dónde dormiría")
	}
	if n.BackupCare == "" {
		reasons = append(reasons, "indica quién la cuidaría si tú no puedes")
	}
	return reasons
}

// ValidationError reports an incomplete questionnaire.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "incomplete answers: missing " + strings.Join(e.Missing, ", ")
}
