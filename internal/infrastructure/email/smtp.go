// Package email sends merchant-facing notifications over SMTP.
package email

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/gomail.v2"

	"paygate/internal/application/checkout/usecases"
	"paygate/internal/shared/biztime"
	"paygate/internal/shared/config"
	"paygate/internal/shared/logger"
)

// SMTPNotifier emails the merchant when an order is paid. It implements
// usecases.PaidOrderNotifier and is invoked off the callback request path.
type SMTPNotifier struct {
	cfg     config.EmailConfig
	dialer  *gomail.Dialer
	printer *message.Printer
	logger  logger.Interface
}

func NewSMTPNotifier(cfg config.EmailConfig, log logger.Interface) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:     cfg,
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		printer: message.NewPrinter(language.English),
		logger:  log.With("component", "email"),
	}
}

func (n *SMTPNotifier) NotifyOrderPaid(_ context.Context, notification usecases.PaidOrderNotification) error {
	if !n.cfg.Enabled || n.cfg.MerchantTo == "" {
		n.logger.Debugw("merchant notifications disabled, skipping", "order_id", notification.OrderID)
		return nil
	}

	amount := n.printer.Sprintf("%.2f", float64(notification.Amount.AmountInCents())/100)
	subject := fmt.Sprintf("Order %s paid", notification.OrderNumber)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment received</h2>
			<p>Order <strong>%s</strong> was paid via MMG Checkout.</p>
			<ul>
				<li>Amount: %s %s</li>
				<li>Transaction ID: %s</li>
				<li>Paid at: %s</li>
			</ul>
		</body>
		</html>
	`, notification.OrderNumber, notification.Amount.Currency(), amount,
		notification.TransactionID, biztime.FormatNoteTime(notification.PaidAt))

	plainBody := fmt.Sprintf(`Payment received

Order %s was paid via MMG Checkout.

Amount: %s %s
Transaction ID: %s
Paid at: %s
`, notification.OrderNumber, notification.Amount.Currency(), amount,
		notification.TransactionID, biztime.FormatNoteTime(notification.PaidAt))

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.cfg.FromAddress, n.cfg.FromName))
	m.SetHeader("To", n.cfg.MerchantTo)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Infow("merchant notified of paid order",
		"order_id", notification.OrderID,
		"order_number", notification.OrderNumber)

	return nil
}
