package cmd

import "fmt"

// Config carries every externally supplied setting. Values arrive as
// strings from the environment; typed parsing happens in the composition
// root so a bad value fails startup, not a request.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost          string
	KafkaCustomerTopic string
	KafkaAdminTopic    string

	CatalogServiceURL string
	AuthServiceURL    string

	// TaxRate is a decimal fraction, e.g. "0.08" for 8%.
	TaxRate string
	// ServiceFee is a flat per-order amount, e.g. "1.50".
	ServiceFee string
	// CancelDuringPreparation is "true" when staff may cancel orders
	// already in preparation.
	CancelDuringPreparation string
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
