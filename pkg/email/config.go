package email

// Config holds transport settings. Field tags carry no prefix; the
// application config nests it under EMAIL_.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER" envDefault:"invoices@localhost.test"`
	SupportEmail         string `env:"SUPPORT" envDefault:"support@localhost.test"`
	DevDir               string `env:"DEV_DIR" envDefault:"./tmp/emails"`
}

// UsePostmark reports whether Postmark credentials are configured.
func (c Config) UsePostmark() bool {
	return c.PostmarkServerToken != ""
}
