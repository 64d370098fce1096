// Package notify sends job-alert emails over SMTP.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/bertramb10/jobscout/internal/engine"
)

// ErrNotConfigured is returned when SMTP credentials are missing. The
// auto-check treats it as "notifications disabled", not a failure.
var ErrNotConfigured = errors.New("notify: email credentials not configured")

type smtpProvider struct {
	host string
	port int
	ssl  bool
}

// providerFor infers SMTP settings from the sender address. Yahoo wants
// implicit TLS on 465; the rest speak STARTTLS on 587.
func providerFor(user string) smtpProvider {
	switch {
	case strings.Contains(user, "yahoo"):
		return smtpProvider{host: "smtp.mail.yahoo.com", port: 465, ssl: true}
	case strings.Contains(user, "outlook"), strings.Contains(user, "hotmail"):
		return smtpProvider{host: "smtp-mail.outlook.com", port: 587}
	default:
		return smtpProvider{host: "smtp.gmail.com", port: 587}
	}
}

func subjectLine(n int) string {
	plural := ""
	if n > 1 {
		plural = "s"
	}
	return fmt.Sprintf("🎯 %d New High-Match Job%s Found!", n, plural)
}

// SendJobNotification emails the given high-match jobs to the
// recipient, as HTML with a plain-text alternative.
func SendJobNotification(ctx context.Context, recipient string, matchThreshold int, jobRecords []engine.JobRecord) error {
	user := engine.Cfg.SMTPUser
	pass := engine.Cfg.SMTPPassword
	if user == "" || pass == "" {
		slog.Warn("email credentials not configured, skipping notification",
			slog.String("recipient", recipient), slog.Int("jobs", len(jobRecords)))
		return ErrNotConfigured
	}

	htmlBody, err := renderHTMLBody(jobRecords, matchThreshold)
	if err != nil {
		return fmt.Errorf("notify: render body: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat("Job Alert System", user); err != nil {
		return fmt.Errorf("notify: sender: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("notify: recipient: %w", err)
	}
	msg.Subject(subjectLine(len(jobRecords)))
	msg.SetBodyString(mail.TypeTextPlain, renderTextBody(jobRecords))
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	p := providerFor(user)
	opts := []mail.Option{
		mail.WithPort(p.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(pass),
	}
	if p.ssl {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(p.host, opts...)
	if err != nil {
		return fmt.Errorf("notify: smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("notify: send: %w", err)
	}

	engine.IncrNotificationsSent()
	slog.Info("notification email sent", slog.String("recipient", recipient), slog.Int("jobs", len(jobRecords)))
	return nil
}

// renderTextBody is the fallback for clients without HTML support.
func renderTextBody(jobRecords []engine.JobRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d New High-Match Jobs Found!\n\n", len(jobRecords))
	b.WriteString("Din automatiske job søgning har fundet nye stillinger med høj kompatibilitet:\n")

	for i, j := range jobRecords {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		fmt.Fprintf(&b, "\n%s\n%s • %s\nMatch: %d%%\n%s\n", j.Title, j.Company, j.Location, j.MatchScore, j.URL)
	}

	b.WriteString("\nDenne email blev sendt automatisk af dit Job Application System.")
	return b.String()
}
