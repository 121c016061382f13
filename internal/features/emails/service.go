package emails

import (
	"fmt"
)

// EmailService renders notification emails and hands them to the
// background worker. Nothing here runs inside a request transaction.
type EmailService struct {
	worker *EmailWorker
	appURL string
}

func (s *EmailService) StartWorkers() {
	s.worker.Start()
}

func (s *EmailService) StopWorkers() {
	s.worker.Stop()
}

func (s *EmailService) EnqueueInviteEmail(toEmail, inviterName, orgName, token string) {
	inviteURL := fmt.Sprintf("%s/invite/%s", s.appURL, token)

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>You have been invited to TeamHub</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="font-size: 24px;">TeamHub</h1>
    <h2>%s invited you to join %s</h2>
    <p>%s has invited you to join <strong>%s</strong> on TeamHub.</p>
    <p><a href="%s" style="background: #4f46e5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; font-weight: bold; display: inline-block;">Accept invitation</a></p>
    <p style="color: #666; font-size: 14px;">This link is valid for 7 days.</p>
    <p style="color: #999; font-size: 12px;">
        If you were not expecting this invitation, you can ignore this email.<br>
        If the button does not work, paste this URL into your browser:<br>
        <a href="%s">%s</a>
    </p>
</body>
</html>
`, inviterName, orgName, inviterName, orgName, inviteURL, inviteURL, inviteURL)

	text := fmt.Sprintf(`%s has invited you to join %s on TeamHub.

Accept the invitation here:
%s

This link is valid for 7 days.

If you were not expecting this invitation, you can ignore this email.
`, inviterName, orgName, inviteURL)

	subject := fmt.Sprintf("[TeamHub] %s invited you to join %s", inviterName, orgName)
	s.worker.Enqueue(toEmail, subject, html, text)
}

func (s *EmailService) EnqueueWelcomeEmail(toEmail, displayName string) {
	loginURL := fmt.Sprintf("%s/login", s.appURL)

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Welcome to TeamHub</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="font-size: 24px;">TeamHub</h1>
    <h2>Welcome, %s!</h2>
    <p>Thanks for signing up. Create an organization and start organizing your team's work.</p>
    <p><a href="%s" style="background: #4f46e5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; font-weight: bold; display: inline-block;">Log in</a></p>
</body>
</html>
`, displayName, loginURL)

	text := fmt.Sprintf(`Welcome, %s!

Thanks for signing up for TeamHub. Create an organization and start organizing your team's work.

Log in here:
%s
`, displayName, loginURL)

	s.worker.Enqueue(toEmail, "[TeamHub] Welcome!", html, text)
}
