package mailer

import "errors"

var (
	// ErrSend возвращается, если письмо не удалось отправить
	ErrSend = errors.New("mailer: failed to send email")

	// ErrNoRecipient возвращается для пустого адреса получателя
	ErrNoRecipient = errors.New("mailer: recipient is required")
)
