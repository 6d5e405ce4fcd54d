package utils

import (
	"fmt"
	"net/smtp"
)

// Mailer sends transactional HTML mail over SMTP. Delivery is best-effort
// everywhere it is used; callers log failures and move on.
type Mailer struct {
	Host     string
	Port     string
	From     string
	Password string
}

func NewMailer(host, port, from, password string) *Mailer {
	return &Mailer{Host: host, Port: port, From: from, Password: password}
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.From, to, subject, htmlBody)

	addr := m.Host + ":" + m.Port
	return smtp.SendMail(
		addr,
		smtp.PlainAuth("", m.From, m.Password, m.Host),
		m.From,
		[]string{to},
		[]byte(msg),
	)
}

func (m *Mailer) SendWelcome(to, name string) error {
	body := fmt.Sprintf(`<h2>Welcome to UWE Lost &amp; Found, %s!</h2>
<p>Your account is ready. You can now report lost or found items and
message other members of the community.</p>
<p>UWE Lost &amp; Found Team</p>`, name)
	return m.send(to, "Welcome to UWE Lost & Found", body)
}

func (m *Mailer) SendMessageNotification(to, senderName, subject string) error {
	body := fmt.Sprintf(`<h2>You have a new message</h2>
<p><strong>%s</strong> sent you a message: %s</p>
<p>Log in to UWE Lost &amp; Found to reply.</p>`, senderName, subject)
	return m.send(to, "New message on UWE Lost & Found", body)
}
