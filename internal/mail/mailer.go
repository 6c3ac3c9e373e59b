package mail

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/adiprasetyo/simpbb/internal/config"
)

// ErrNotConfigured is returned when no mail server is set.
var ErrNotConfigured = errors.New("mail server is not configured")

// Mailer sends messages over plain SMTP, STARTTLS or implicit TLS
// depending on configuration.
type Mailer struct {
	cfg config.MailConfig
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendVerificationCode emails a registration code and its expiry.
func (m *Mailer) SendVerificationCode(recipient, code string, expiresAt time.Time) error {
	wib := time.FixedZone("WIB", 7*3600)
	body := fmt.Sprintf(`Halo,

Berikut kode verifikasi registrasi SIMPBB Anda:

    Kode             : %s
    Berlaku sampai   : %s WIB

Masukkan kode ini pada form registrasi SIMPBB untuk melanjutkan proses pembuatan akun.
Jika Anda tidak merasa meminta kode ini, abaikan email ini dan akun Anda tetap aman.

Terima kasih,
Tim SIMPBB
`, code, expiresAt.In(wib).Format("02 January 2006 15:04"))

	return m.send(recipient, "Kode Verifikasi Registrasi SIMPBB", body)
}

func (m *Mailer) send(recipient, subject, body string) error {
	if m.cfg.Server == "" {
		return ErrNotConfigured
	}
	addr := net.JoinHostPort(m.cfg.Server, strconv.Itoa(m.cfg.Port))

	client, err := m.dial(addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer client.Close()

	if m.cfg.StartTLS && !m.cfg.SSLTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Server}); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if m.cfg.UseCredentials && m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Server)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(recipient); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + recipient,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func (m *Mailer) dial(addr string) (*smtp.Client, error) {
	if m.cfg.SSLTLS {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Server})
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, m.cfg.Server)
	}
	return smtp.Dial(addr)
}
