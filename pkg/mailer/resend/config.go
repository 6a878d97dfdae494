package resend

// Config holds Resend credentials and the default sender identity.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL" envDefault:"noreply@pacassetmanagement.com"`
	SenderName  string `env:"RESEND_FROM_NAME" envDefault:"PACAM Forms"`
}

// Enabled reports whether an API key is present.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}
