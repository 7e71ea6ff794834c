package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"visualearn/config"
)

// SendClassStatusEmail notifies an instructor that an admin approved,
// denied, or left feedback on their class. Callers fire this asynchronously;
// a delivery failure must never fail the originating request.
func SendClassStatusEmail(toEmail, toName, className, status, feedback string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("SENDGRID_API_KEY not set, skipping status email for class %q", className)
		return nil
	}

	subject := fmt.Sprintf("Your class %q is now %s", className, status)
	if feedback != "" {
		subject = fmt.Sprintf("New feedback on your class %q", className)
	}

	from := mail.NewEmail("Visual Learning", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	plain := buildStatusEmailText(toName, className, status, feedback)
	html := buildStatusEmailBody(toName, className, status, feedback)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)

	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func buildStatusEmailText(name, className, status, feedback string) string {
	body := fmt.Sprintf("Hi %s,\n\nYour class %q has been marked %s.\n", name, className, status)
	if feedback != "" {
		body += fmt.Sprintf("\nAdmin feedback:\n%s\n", feedback)
	}
	body += "\n— Visual Learning"
	return body
}

func buildStatusEmailBody(name, className, status, feedback string) string {
	feedbackBlock := ""
	if feedback != "" {
		feedbackBlock = fmt.Sprintf(`<div class="info-box"><strong>Admin feedback:</strong><p>%s</p></div>`, feedback)
	}

	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #0B2447; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #0B2447; line-height: 1.6; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #576CBC; margin: 20px 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>Visual Learning</h1></div>
			<div class="content">
				<p>Hi %s,</p>
				<p>Your class <strong>%s</strong> has been marked <strong>%s</strong>.</p>
				%s
			</div>
			<div class="footer">This is an automated message from Visual Learning.</div>
		</div>
	</body>
	</html>`, name, className, status, feedbackBlock)
}
