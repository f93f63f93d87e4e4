package mail

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

const (
	fromAddress = "Bistro Boss <mailgun@sandbox6c8dab7357f941f0aa9f037c6f13affd.mailgun.org>"
	orderInbox  = "aburayhan.bpi@gmail.com"
	sendTimeout = 10 * time.Second
)

type Message struct {
	Subject string
	Text    string
	HTML    string
}

// OrderConfirmation builds the checkout confirmation referencing the
// payment's transaction id.
func OrderConfirmation(transactionID string) Message {
	return Message{
		Subject: "Bistro Boss Order Confirmation",
		Text:    "Thank you for your order. Transaction Id: " + transactionID,
		HTML: fmt.Sprintf(`<div>
    <h2>Thank you for your order.</h2>
    <p>Your transaction Id: <strong>%s</strong></p>
</div>`, transactionID),
	}
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

// MailgunSender delivers messages through the Mailgun API.
type MailgunSender struct {
	mg     *mailgun.MailgunImpl
	domain string
}

func NewMailgunSender(domain, apiKey string) *MailgunSender {
	return &MailgunSender{mg: mailgun.NewMailgun(domain, apiKey), domain: domain}
}

func (s *MailgunSender) Send(ctx context.Context, m Message) error {
	msg := s.mg.NewMessage(fromAddress, m.Subject, m.Text, orderInbox)
	msg.SetHtml(m.HTML)
	_, _, err := s.mg.Send(ctx, msg)
	return err
}

// Dispatcher decouples email delivery from the request that triggered it.
// Enqueue never blocks the caller beyond the channel buffer; delivery
// failures are logged and never reach the HTTP response.
type Dispatcher struct {
	sender Sender
	jobs   chan Message
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, buffer int) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		jobs:   make(chan Message, buffer),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for m := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.sender.Send(ctx, m); err != nil {
			log.Printf("mail: send %q failed: %v", m.Subject, err)
		} else {
			log.Printf("mail: sent %q", m.Subject)
		}
		cancel()
	}
}

// Enqueue submits a message for background delivery. When the queue is full
// the message is dropped with a log line rather than stalling the request.
func (d *Dispatcher) Enqueue(m Message) {
	select {
	case d.jobs <- m:
	default:
		log.Printf("mail: queue full, dropping %q", m.Subject)
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.jobs)
	d.wg.Wait()
}
