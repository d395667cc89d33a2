package auth

import (
	"context"
	"fmt"
	"math/rand/v2"
)

// Sender delivers a verification message and returns the provider's
// delivery reference. Satisfied by sms.TwilioSender.
type Sender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

func generateOTP() string {
	return fmt.Sprintf("%06d", rand.IntN(900000)+100000)
}

func otpMessage(code string) string {
	return fmt.Sprintf("Your QueFood verification code is %s", code)
}
