package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"consult-contact-relay/pkg/sanitizer"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	Name      string
	Phone     string
	Email     string
	Message   string
	Agreement bool
}

// Consent labels shown in the notification
const (
	ConsentAgreed    = "동의함"
	ConsentNotAgreed = "동의하지 않음"
)

// contactEmailTemplate is the HTML template for contact form emails.
// Every value is escaped by html/template; message lines are joined with <br>.
const contactEmailTemplate = `<h3>새로운 문의가 도착했습니다</h3>
<p><strong>이름:</strong> {{.Name}}</p>
<p><strong>연락처:</strong> {{.Phone}}</p>
<p><strong>이메일:</strong> {{.Email}}</p>
<p><strong>문의내용:</strong></p>
<p>{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
<p><strong>개인정보 수집 동의:</strong> {{.Consent}}</p>
`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

type contactView struct {
	Name    string
	Phone   string
	Email   string
	Lines   []string
	Consent string
}

// ContactSubject renders the notification subject for a submitter name
func ContactSubject(name string) string {
	return fmt.Sprintf("[웹사이트 문의] %s님의 문의가 도착했습니다", sanitizer.SingleLine(name))
}

// ConsentLabel returns the human readable consent indicator
func ConsentLabel(agreed bool) string {
	if agreed {
		return ConsentAgreed
	}
	return ConsentNotAgreed
}

// RenderContactHTML renders the admin notification body
func RenderContactHTML(data ContactEmailData) (string, error) {
	text := strings.ReplaceAll(data.Message, "\r\n", "\n")
	view := contactView{
		Name:    data.Name,
		Phone:   data.Phone,
		Email:   data.Email,
		Lines:   strings.Split(text, "\n"),
		Consent: ConsentLabel(data.Agreement),
	}

	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, view); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return sanitizer.EmailHTML(body.String()), nil
}
