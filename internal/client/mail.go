package client

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/miteshrathod09/sick-fits/internal/config"
)

// MailClient delivers transactional mail. Senders treat delivery as
// fire-and-forget; the error only reports handoff failure to the transport.
type MailClient interface {
	Send(ctx context.Context, to, subject, html string) error
}

type mailClientImpl struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailClient(mailCfg *config.Mail) MailClient {
	return &mailClientImpl{
		dialer: gomail.NewDialer(mailCfg.Host, mailCfg.Port, mailCfg.User, mailCfg.Password),
		from:   mailCfg.From,
	}
}

func (c *mailClientImpl) Send(ctx context.Context, to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", EmailTemplate(html))

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

// EmailTemplate wraps a fragment in the storefront's standard mail frame.
func EmailTemplate(body string) string {
	return fmt.Sprintf(`
	<div class="email" style="
		border: 1px solid black;
		padding: 20px;
		font-family: sans-serif;
		line-height: 2;
		font-size: 20px;
	">
		<h2>Hello There!</h2>
		<p>%s</p>
		<p>😘, Mitesh</p>
	</div>
	`, body)
}
