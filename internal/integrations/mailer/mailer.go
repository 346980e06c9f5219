package mailer

import (
	"context"
	"fmt"
	"html"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
)

// Mailer отправляет письма с чеком об оплате бронирования
type Mailer struct {
	sender Sender
	from   string
}

// New создает Mailer поверх SMTP
func New(host string, port int, username, password, from string) *Mailer {
	return NewWithSender(gomail.NewDialer(host, port, username, password), from)
}

// NewWithSender создает Mailer с заданным транспортом
func NewWithSender(sender Sender, from string) *Mailer {
	return &Mailer{sender: sender, from: from}
}

// Receipt данные письма с чеком
type Receipt struct {
	Booking *domain.Booking
	Payment *domain.Payment
	PDF     []byte // Необязательное вложение
}

// SendReceipt отправляет чек автору бронирования
func (m *Mailer) SendReceipt(ctx context.Context, r Receipt) error {
	if r.Payment == nil || r.Payment.UserEmail == "" {
		return ErrNoRecipient
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", r.Payment.UserEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Payment receipt for booking #%d", r.Payment.BookingID))
	msg.SetBody("text/html", receiptBody(r))

	if len(r.PDF) > 0 {
		pdf := r.PDF
		msg.Attach(fmt.Sprintf("receipt-%d.pdf", r.Payment.ID), gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}))
	}

	done := make(chan error, 1)
	go func() {
		done <- m.sender.DialAndSend(msg)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrSend, ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSend, err)
		}
		return nil
	}
}

func receiptBody(r Receipt) string {
	p := r.Payment
	body := fmt.Sprintf(`
		<h2>Thank you for your payment!</h2>
		<p>Booking <b>#%d</b> is confirmed.</p>
		<table>
			<tr><td>Amount paid</td><td>%.2f</td></tr>
			<tr><td>Original amount</td><td>%.2f</td></tr>
			<tr><td>Discount</td><td>%.2f</td></tr>
			<tr><td>Transaction</td><td>%s</td></tr>
			<tr><td>Paid at</td><td>%s</td></tr>
		</table>`,
		p.BookingID, p.Amount, p.OriginalAmount, p.Discount,
		html.EscapeString(p.TransactionID), p.PaymentDate.Format("2006-01-02 15:04"))

	if r.Booking != nil {
		body += fmt.Sprintf(`
		<p>%s on %s, slots: %s</p>`,
			html.EscapeString(r.Booking.CourtType), r.Booking.Date.Format(domain.DateFormat),
			html.EscapeString(joinSlots(r.Booking.Slots)))
	}
	return body
}

func joinSlots(slots []string) string {
	out := ""
	for i, s := range slots {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

// Noop почтовик для конфигурации без SMTP
type Noop struct{}

// SendReceipt ничего не делает
func (Noop) SendReceipt(context.Context, Receipt) error {
	return nil
}
