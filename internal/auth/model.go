package auth

// Customer is the domain entity. Password holds the hash, never plaintext.
// OTP is the pending verification code, empty when none is outstanding.
type Customer struct {
	ID          int
	PhoneNumber string
	Name        string
	Password    string
	Address     string
	Verified    bool
	OTP         string
	Email       string
}
