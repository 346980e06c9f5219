package mailer

import gomail "gopkg.in/gomail.v2"

// Sender отправляет письма (*gomail.Dialer)
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}
