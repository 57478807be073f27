package utils

import (
	"edtechbackend/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendConsultationEmail notifies the consultation team about a new
// request. Failures are logged and never surfaced to the requester.
func SendConsultationEmail(name, email, phone, topic, message string) error {
	from := mail.NewEmail("EdTech Platform", config.AppConfig.EmailSender)
	to := mail.NewEmail("Consultation Team", config.AppConfig.EmailSender)
	subject := fmt.Sprintf("New consultation request: %s", topic)

	plain := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nTopic: %s\n\n%s",
		name, email, phone, topic, message,
	)
	html := fmt.Sprintf(`
		<h2>New consultation request</h2>
		<p><b>Name:</b> %s</p>
		<p><b>Email:</b> %s</p>
		<p><b>Phone:</b> %s</p>
		<p><b>Topic:</b> %s</p>
		<p>%s</p>`,
		name, email, phone, topic, message,
	)

	msg := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)

	resp, err := client.Send(msg)
	if err != nil {
		log.Printf("Error sending consultation email: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Consultation email rejected, status %d: %s", resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}
