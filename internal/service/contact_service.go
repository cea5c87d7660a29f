package service

import (
	"fmt"
	"strings"

	"github.com/ankietdev/api/config"
	"github.com/ankietdev/api/internal/apperr"
	"github.com/ankietdev/api/internal/dto"
	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"
)

// ContactService forwards contact form messages to the site mailbox over SMTP.
type ContactService interface {
	Send(req dto.ContactRequest) error
}

type contactService struct {
	cfg  *config.Config
	send func(m *gomail.Message) error
}

func NewContactService(cfg *config.Config) ContactService {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password)
	return &contactService{cfg: cfg, send: func(m *gomail.Message) error { return dialer.DialAndSend(m) }}
}

func (s *contactService) Send(req dto.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return apperr.Validationf("name, email and message are required")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SMTP.From)
	m.SetHeader("To", s.cfg.SMTP.ContactEmail)
	m.SetAddressHeader("Reply-To", email, name)
	m.SetHeader("Subject", "New contact form message")
	m.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\nMessage:\n%s", name, email, message))

	if err := s.send(m); err != nil {
		log.Error().Err(err).Msg("Failed to send contact mail")
		return fmt.Errorf("error sending contact mail: %w", err)
	}
	return nil
}
