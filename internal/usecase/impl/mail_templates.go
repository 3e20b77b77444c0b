package impl

import (
	"bytes"
	"html/template"
	"net/url"

	"todoez/internal/domain/service"

	"github.com/pkg/errors"
)

var linkMailTemplate = template.Must(template.New("link").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif">
<h2>{{.Subject}}</h2>
<p>{{.Text}}</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
</body>
</html>
`))

// linkMail is a mail whose only call to action is a single link.
type linkMail struct {
	Subject string
	Text    string
	Link    string
}

func (m linkMail) render(to string) (*service.MailMessage, error) {
	var html bytes.Buffer
	if err := linkMailTemplate.Execute(&html, m); err != nil {
		return nil, errors.Wrap(err, "render mail")
	}

	return &service.MailMessage{
		To:       to,
		Subject:  m.Subject,
		HTMLBody: html.String(),
		TextBody: m.Text + "\n\n" + m.Link + "\n",
	}, nil
}

// appLink joins the frontend origin, a path and the query.
func appLink(baseURL, path string, query url.Values) string {
	return baseURL + path + "?" + query.Encode()
}

func verifyEmailMail(baseURL, email, token string) linkMail {
	return linkMail{
		Subject: "Welcome to website",
		Text:    "Click link below to verify your email",
		Link:    appLink(baseURL, "/auth/verify-email", url.Values{"email": {email}, "token": {token}}),
	}
}

func resetPasswordMail(baseURL, email, token string) linkMail {
	return linkMail{
		Subject: "Forgot password",
		Text:    "Click link below to reset your password",
		Link:    appLink(baseURL, "/auth/reset-password", url.Values{"email": {email}, "token": {token}}),
	}
}

func taskAssignedMail(baseURL, projectID, taskID, content string) linkMail {
	return linkMail{
		Subject: "New task assigned",
		Text:    "You have been assigned: " + content,
		Link:    baseURL + "/projects/" + url.PathEscape(projectID) + "/tasks/" + url.PathEscape(taskID),
	}
}
