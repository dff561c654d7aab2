package utils

import (
	"fmt"
	"net/smtp"

	"kycapp/config"
)

// SendSubmissionEmail sends a confirmation once a case's details are
// submitted for review.
func SendSubmissionEmail(email, name string, caseID uint) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password // App password

	to := []string{email}

	subject := "Subject: KYC Application Submitted\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	if name == "" {
		name = "Customer"
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">KYC Application Received</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your KYC application has been submitted for review. Your reference number is:</p>
					<h1 style="text-align: center; color: #4CAF50; font-size: 32px; margin: 20px 0;">KYC-%d</h1>
					<p style="font-size: 14px; color: #999999; text-align: center;">We will notify you once the review is complete.</p>
				</div>
			</body>
		</html>
	`, name, caseID)

	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message)
}
