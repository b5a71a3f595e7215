package mailing

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/utils"
)

func SendMail(toEmail, subject, body string) error {
	senderName := utils.GetConfig("SMTP_SENDER_NAME")
	authEmail := utils.GetConfig("SMTP_AUTH_EMAIL")
	authPassword := utils.GetConfig("SMTP_AUTH_PASSWORD")
	host := utils.GetConfig("SMTP_HOST")
	port, err := strconv.Atoi(utils.GetConfig("SMTP_PORT"))
	if err != nil {
		return err
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", senderName)
	mail.SetHeader("To", toEmail)
	mail.SetHeader("Subject", subject)
	mail.SetBody("text/html", body)

	dialer := gomail.NewDialer(host, port, authEmail, authPassword)
	return dialer.DialAndSend(mail)
}
