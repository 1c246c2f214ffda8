// Package application composes contact messages for the configured
// destination number.
package application

import (
	"github.com/lunapup/adoption-api/internal/domains/contact/domain"
)

// Service holds the destination WhatsApp number.
type Service struct {
	number string
}

func NewService(number string) *Service {
	return &Service{number: number}
}

// Compose validates the request and renders the message plus deep link.
func (s *Service) Compose(req domain.Request) (*domain.Composition, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	message := req.Compile()
	return &domain.Composition{
		Message: message,
		Link:    domain.Link(s.number, message),
	}, nil
}
