// Package domain composes the pre-filled adoption contact message and
// its messaging deep link.
package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrConsentRequired = errors.New("consent is required")
)

// Minimum lengths mirroring the contact form's local validation.
const (
	MinNameLen     = 2
	MinWhatsAppLen = 6
	MinDistrictLen = 2
)

// Prefill echoes the precheck answers into the composed message.
type Prefill struct {
	HoursAlone   string
	BiteHandling string
	Routine      string
}

// Request is one contact form submission. Nothing is stored; the output
// is a message the visitor sends themselves.
type Request struct {
	Name     string
	WhatsApp string
	District string
	HomeType string
	HasPets  string
	Message  string
	Consent  bool
	Prefill  Prefill
}

// ValidationError lists the form fields still missing or too short.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "incomplete contact request: missing " + strings.Join(e.Missing, ", ")
}

// Validate mirrors the form's completeness rules.
func (r Request) Validate() error {
	var missing []string
	if len(strings.TrimSpace(r.Name)) < MinNameLen {
		missing = append(missing, "nombre")
	}
	if len(strings.TrimSpace(r.WhatsApp)) < MinWhatsAppLen {
		missing = append(missing, "WhatsApp")
	}
	if len(strings.TrimSpace(r.District)) < MinDistrictLen {
		missing = append(missing, "distrito/ciudad")
	}
	if strings.TrimSpace(r.HomeType) == "" {
		missing = append(missing, "vivienda")
	}
	if strings.TrimSpace(r.HasPets) == "" {
		missing = append(missing, "otras mascotas")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	if !r.Consent {
		return ErrConsentRequired
	}
	return nil
}

// Composition is the rendered message plus its deep link.
type Composition struct {
	Message string
	Link    string
}

// Compile renders the adoption message, substituting "-" for empty
// optional fields.
func (r Request) Compile() string {
	return fmt.Sprintf(`Hola! Quiero adoptar a la perrita

Nombre: %s
WhatsApp: %s
Distrito/Ciudad: %s
Vivienda: %s
¿Otras mascotas?: %s
Mensaje: %s

[Pre-check]
Horas sola al día: %s
Si muerde jugando: %s
Rutina: %s
`,
		orDash(r.Name), orDash(r.WhatsApp), orDash(r.District),
		orDash(r.HomeType), orDash(r.HasPets), orDash(r.Message),
		r.Prefill.HoursAlone, r.Prefill.BiteHandling, r.Prefill.Routine)
}

// Link builds the wa.me deep link for the destination number, keeping
// only its digits.
func Link(number, message string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(message)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
