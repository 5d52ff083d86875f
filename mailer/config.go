package mailer

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SMTPHost     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	FromAddress  string `envconfig:"SMTP_FROM_ADDRESS"`
}

func LoadConfig() (c *Config, err error) {
	c = &Config{}
	err = envconfig.Process("", c)
	if err != nil {
		return nil, err
	}
	if c.FromAddress == "" {
		c.FromAddress = c.SMTPUsername
	}
	return c, nil
}
