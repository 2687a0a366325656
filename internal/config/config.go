package config

import "time"

type Config struct {
	Environment Environment
	HTTP        HTTPServer

	Braintree Braintree `envPrefix:"BRAINTREE_"`
	Appwrite  Appwrite  `envPrefix:"APPWRITE_"`
	Checkout  Checkout  `envPrefix:"CHECKOUT_"`

	ReconciliationDB string `env:"RECONCILIATION_DB" envDefault:"reconciliation.db"`
}

type Braintree struct {
	Environment string `env:"ENVIRONMENT" envDefault:"sandbox"`
	MerchantID  string `env:"MERCHANT_ID"`
	PublicKey   string `env:"PUBLIC_KEY"`
	PrivateKey  string `env:"PRIVATE_KEY"`
}

type Appwrite struct {
	Endpoint     string `env:"ENDPOINT"`
	ProjectID    string `env:"PROJECT_ID"`
	APIKey       string `env:"API_KEY"`
	DatabaseID   string `env:"DATABASE_ID"`
	CollectionID string `env:"COLLECTION_ID"`
}

// Checkout holds the retry policy applied to both remote calls. Deployments
// (and tests) can tighten the delay through the environment.
type Checkout struct {
	RetryAttempts int           `env:"RETRY_ATTEMPTS" envDefault:"3"`
	RetryDelay    time.Duration `env:"RETRY_DELAY" envDefault:"1s"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
