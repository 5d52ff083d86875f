package service

type Config struct {
	DatabaseUri             string  `envconfig:"DATABASE_URI" required:"true"`
	DatabaseMaxConns        int     `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseMaxIdleConns    int     `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	DatabaseConnMaxLifetime int     `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1800"` // 30 minutes
	SentryDSN               string  `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate  float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	DatadogAgentUrl         string  `envconfig:"DATADOG_AGENT_URL"`
	LogFilePath             string  `envconfig:"LOG_FILE_PATH"`
	Host                    string  `envconfig:"HOST" default:"localhost:5000"`
	Port                    int     `envconfig:"PORT" default:"5000"`
	DefaultRateLimit        int     `envconfig:"DEFAULT_RATE_LIMIT" default:"10"`
	StrictRateLimit         int     `envconfig:"STRICT_RATE_LIMIT" default:"10"`
	BurstRateLimit          int     `envconfig:"BURST_RATE_LIMIT" default:"1"`
	EnablePrometheus        bool    `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort          int     `envconfig:"PROMETHEUS_PORT" default:"9092"`
	AdminEmail              string  `envconfig:"ADMIN_EMAIL" default:"admin@example.com"`
	AdminPassword           string  `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	InvoiceBaseUrl          string  `envconfig:"INVOICE_BASE_URL" default:"http://localhost:5000/invoice"`
	PaymentMaxRetries       int     `envconfig:"PAYMENT_MAX_RETRIES" default:"5"`
	Branding                BrandingConfig
}

type BrandingConfig struct {
	Title string `envconfig:"BRANDING_TITLE" default:"InvoiceHub"`
	Desc  string `envconfig:"BRANDING_DESC" default:"Crypto invoice management"`
}
