// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
	"strings"
	"time"
)

type IMailService interface {
	SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error
	SendMailToResetPassword(email, token string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // 587 (STARTTLS) or 465 (SMTPS)
	Username string
	Password string
	From     string // envelope from, e.g. "no-reply@yourapp.com"
	FromName string
	UseSSL   bool // true for SMTPS 465, false for STARTTLS 587

	AppName    string
	AppBaseURL string // e.g. "https://yourapp.com"
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("html").Parse(baseHTMLTemplate)),
		textTpl: template.Must(template.New("text").Parse(plainTextTemplate)),
	}, nil
}

func (s *smtpMailService) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	html, text, err := s.renderEmail(emailData{
		Title:     subject,
		Intro:     body,
		ButtonURL: ctaURL,
		ButtonTxt: ctaText,
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

func (s *smtpMailService) SendMailToResetPassword(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))
	subject := "Reset your password"

	html, text, err := s.renderEmail(emailData{
		Title:     subject,
		Intro:     "We received a request to reset your password. Click the button below to continue. If you didn't request this, you can safely ignore this email.",
		ButtonURL: link,
		ButtonTxt: "Reset Password",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

type emailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; background: #f8fafc; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 10px 30px rgba(0,0,0,0.08); }
    .header { padding: 24px 32px; border-bottom: 1px solid #e2e8f0; font-weight: 700; font-size: 20px; color: #2563eb; text-transform: uppercase; }
    .hero { padding: 32px; }
    h1 { margin: 0 0 16px; font-size: 24px; }
    p { margin: 0 0 20px; line-height: 1.7; color: #475569; }
    .btn { display: inline-block; padding: 14px 28px; background: #2563eb; color: #ffffff !important; text-decoration: none; border-radius: 10px; font-weight: 600; }
    .muted { color: #64748b; font-size: 13px; word-break: break-all; }
    .footer { padding: 20px 32px; color: #64748b; font-size: 13px; text-align: center; border-top: 1px solid #e2e8f0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <div class="hero">
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
      {{if .ButtonURL}}
        <p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>
        <p class="muted">If the button doesn't work, copy and paste this link into your browser:<br>{{.ButtonURL}}</p>
      {{end}}
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}. All rights reserved.</div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}

{{if .ButtonURL}}Open this link:
{{.ButtonURL}}
{{end}}
— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data emailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		if err = c.Auth(auth); err != nil {
			return err
		}
		if err = c.Mail(s.cfg.From); err != nil {
			return err
		}
		if err = c.Rcpt(to); err != nil {
			return err
		}
		w, err := c.Data()
		if err != nil {
			return err
		}
		if _, err = w.Write(msg.Bytes()); err != nil {
			return err
		}
		return w.Close()
	}

	// STARTTLS path (typically port 587); smtp.SendMail upgrades when the
	// server advertises it.
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mimeQuote(name), s.cfg.From)
}

// RFC 2047 encoding for non-ASCII display names.
func mimeQuote(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(s)))
		}
	}
	return s
}
