package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	DatabaseURL string `env:"DATABASE_URL"`
	AppSecret   string `env:"APP_SECRET"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:7777"`

	Payment   Payment   `envPrefix:"PAYMENT_"`
	Stripe    Stripe    `envPrefix:"STRIPE_"`
	Braintree Braintree `envPrefix:"BRAINTREE_"`
	Mail      Mail      `envPrefix:"MAIL_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host      string  `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port      string  `env:"HTTP_PORT" envDefault:"4444"`
	RateLimit float64 `env:"HTTP_RATE_LIMIT" envDefault:"20"`
}

type Payment struct {
	// Provider selects the charge client: "stripe" or "braintree".
	Provider string `env:"PROVIDER" envDefault:"stripe"`
	Currency string `env:"CURRENCY" envDefault:"USD"`
}

type Stripe struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.stripe.com"`
	SecretKey  string `env:"SECRET_KEY"`
}

type Braintree struct {
	Environment string `env:"ENVIRONMENT"`
	MerchantID  string `env:"MERCHANT_ID"`
	PublicKey   string `env:"PUBLIC_KEY"`
	PrivateKey  string `env:"PRIVATE_KEY"`
}

type Mail struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"noreply@sickfits.dev"`
}
