package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/emmanuelronoh/backend/internal/entity"
)

type IEmailService interface {
	SendResetToken(toEmail, token string) error
	SendContactNotice(toEmail string, message *entity.ContactMessage) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Reset Your Password")

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.clientURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the link below to proceed:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendContactNotice(toEmail string, message *entity.ContactMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New contact message: %s", message.Subject))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Contact Form Submission</h2>
			<p><strong>From:</strong> %s (%s)</p>
			<p><strong>Subject:</strong> %s</p>
			<p>%s</p>
		</div>
	`, message.Name, message.Email, message.Subject, message.Message)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
