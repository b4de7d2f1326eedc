package mailer

import (
	"testing"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/config"
	"github.com/stretchr/testify/assert"
)

type recordingSender struct {
	to      []string
	subject string
}

func (r *recordingSender) SendEmail(to []string, subject, body string) error {
	r.to = to
	r.subject = subject
	return nil
}

func TestNewSender(t *testing.T) {
	s := NewSender(&config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		From:     "noreply@example.com",
		Password: "secret",
	})

	assert.NotNil(t, s.dialer)
	assert.Equal(t, "noreply@example.com", s.from)
}

func TestSendEmail_Recorded(t *testing.T) {
	rec := &recordingSender{}
	err := rec.SendEmail([]string{"ana@example.com"}, "Profile approved", "Welcome aboard")

	assert.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, rec.to)
	assert.Equal(t, "Profile approved", rec.subject)
}
