package services

import "log"

// Mailer delivers password-reset codes. Real delivery is a deployment
// concern; the default implementation just logs.
type Mailer interface {
	SendResetCode(email, code string) error
}

type LogMailer struct{}

func (LogMailer) SendResetCode(email, code string) error {
	log.Printf("password reset code for %s: %s", email, code)
	return nil
}
