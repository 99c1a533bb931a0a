package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"rentauth/internal/domain/entity"

	"github.com/pkg/errors"
)

const (
	defaultFrontendURL = "http://localhost:5173"
	defaultFromName    = "Rentals"
)

// Email is a rendered message ready for a transport.
type Email struct {
	To       string
	Subject  string
	HTMLBody string
}

type emailData struct {
	FirstName      string
	Email          string
	ActionURL      string
	LoginURL       string
	LockoutMinutes int
	SupportEmail   string
}

type emailTemplate struct {
	subject string // format string taking the app name
	body    *template.Template
}

const layoutHead = `<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
`

const layoutFoot = `<hr>
<p style="font-size: 12px; color: #888;">This email was sent to {{.Email}}.{{if .SupportEmail}} Need help? Contact us at {{.SupportEmail}}.{{end}}</p>
</body>
</html>
`

//nolint:gochecknoglobals
var emailTemplates = map[entity.NotificationKind]emailTemplate{
	entity.NotificationVerification: {
		subject: "Verify your %s account",
		body: template.Must(template.New("verification").Parse(layoutHead + `<h2>Hello {{.FirstName}}!</h2>
<p>Thanks for signing up. Please confirm your email address to activate your account.</p>
<p><a href="{{.ActionURL}}">Verify my email</a></p>
<p>If the button does not work, copy and paste this link:</p>
<p style="word-break: break-all;">{{.ActionURL}}</p>
<p>The link expires in 24 hours.</p>
` + layoutFoot)),
	},
	entity.NotificationWelcome: {
		subject: "Welcome to %s, you're all set!",
		body: template.Must(template.New("welcome").Parse(layoutHead + `<h2>Congratulations, {{.FirstName}}!</h2>
<p>Your email has been verified and your account is now active.</p>
<p><a href="{{.LoginURL}}">Sign in</a></p>
` + layoutFoot)),
	},
	entity.NotificationPasswordReset: {
		subject: "Reset your %s password",
		body: template.Must(template.New("password-reset").Parse(layoutHead + `<h2>Hello {{.FirstName}},</h2>
<p>We received a request to reset your password. Use the link below to choose a new one:</p>
<p><a href="{{.ActionURL}}">Reset my password</a></p>
<p style="word-break: break-all;">{{.ActionURL}}</p>
<p><strong>If you did not request this, ignore this email.</strong> Your password will remain unchanged.</p>
` + layoutFoot)),
	},
	entity.NotificationAccountLocked: {
		subject: "Security alert: your %s account is temporarily locked",
		body: template.Must(template.New("account-locked").Parse(layoutHead + `<h2>Hello {{.FirstName}},</h2>
<p>Your account was locked after several failed sign-in attempts.</p>
<p>You can try again in {{.LockoutMinutes}} minutes.</p>
<p>If this was not you, consider <a href="{{.LoginURL}}">signing in</a> and resetting your password once the lock expires.</p>
` + layoutFoot)),
	},
}

// Renderer turns a notification into an Email.
type Renderer struct {
	frontendURL  string
	appName      string
	supportEmail string
}

// NewRenderer creates a Renderer. Empty values fall back to local defaults.
func NewRenderer(frontendURL, appName, supportEmail string) *Renderer {
	frontendURL = strings.TrimRight(strings.TrimSpace(frontendURL), "/")
	if frontendURL == "" {
		frontendURL = defaultFrontendURL
	}
	if strings.TrimSpace(appName) == "" {
		appName = defaultFromName
	}

	return &Renderer{frontendURL: frontendURL, appName: appName, supportEmail: supportEmail}
}

// Render builds the email for kind.
func (r *Renderer) Render(account *entity.Account, kind entity.NotificationKind, notificationCtx entity.NotificationContext) (*Email, error) {
	tmpl, ok := emailTemplates[kind]
	if !ok {
		return nil, errors.Errorf("unknown notification kind %q", kind)
	}

	data := emailData{
		FirstName:      account.FirstName,
		Email:          account.Email,
		LoginURL:       r.frontendURL + "/login",
		LockoutMinutes: notificationCtx.LockoutMinutes,
		SupportEmail:   r.supportEmail,
	}
	if data.FirstName == "" {
		data.FirstName = "there"
	}

	switch kind {
	case entity.NotificationVerification:
		data.ActionURL = r.linkWithToken("/verify-email", notificationCtx.Token)
	case entity.NotificationPasswordReset:
		data.ActionURL = r.linkWithToken("/reset-password", notificationCtx.Token)
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, data); err != nil {
		return nil, errors.Wrapf(err, "render %s email", kind)
	}

	return &Email{To: account.Email, Subject: fmt.Sprintf(tmpl.subject, r.appName), HTMLBody: body.String()}, nil
}

func (r *Renderer) linkWithToken(path, token string) string {
	return r.frontendURL + path + "?token=" + url.QueryEscape(token)
}
