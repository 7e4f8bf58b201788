package notifications

import (
	"bytes"
	"html/template"

	"flowworks-backend/internal/contact"
)

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New contact inquiry</h3>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
  {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
  {{if .Interest}}<p><strong>Interested in:</strong> {{.Interest}}</p>{{end}}
  <p><strong>ID:</strong> {{.ID}}</p>
  <p><strong>Message:</strong><br/>{{.Message}}</p>
</body>
</html>`

const contactAcknowledgementTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Hi {{.Name}},</p>
  <p>Thanks for getting in touch. Your message reached us and someone from the team will reply within one business day.</p>
  <p>For reference, here is what you sent:</p>
  <blockquote>{{.Message}}</blockquote>
  <p>Prefer to talk it through? Book a call any time from our website.</p>
</body>
</html>`

var (
	contactNotificationTmpl    = template.Must(template.New("contact_notification").Parse(contactNotificationTemplate))
	contactAcknowledgementTmpl = template.Must(template.New("contact_acknowledgement").Parse(contactAcknowledgementTemplate))
)

func buildContactNotificationHTML(inq contact.Inquiry) (string, error) {
	var buf bytes.Buffer
	if err := contactNotificationTmpl.Execute(&buf, inq); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildContactAcknowledgementHTML(inq contact.Inquiry) (string, error) {
	var buf bytes.Buffer
	if err := contactAcknowledgementTmpl.Execute(&buf, inq); err != nil {
		return "", err
	}
	return buf.String(), nil
}
