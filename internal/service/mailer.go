package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Mailer delivers account emails. Delivery itself happens outside this service.
type Mailer interface {
	SendVerification(ctx context.Context, to, name, link string) error
}

// LogMailer writes the verification link to the log instead of sending it.
type LogMailer struct {
	Log logrus.FieldLogger
}

func (m LogMailer) SendVerification(_ context.Context, to, name, link string) error {
	m.Log.WithFields(logrus.Fields{
		"to":   to,
		"name": name,
		"link": link,
	}).Info("email verification link issued")
	return nil
}
