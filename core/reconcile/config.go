package reconcile

// Config holds reconciliation settings.
type Config struct {
	// MaxPages caps the API pages fetched per owner.
	MaxPages int `mapstructure:"max_pages" default:"1000"`
	// Concurrency is the number of owners reconciled at once in a batch.
	Concurrency int `mapstructure:"concurrency" default:"1"`
	// ContinueOnError keeps a batch going after an owner fails.
	ContinueOnError bool `mapstructure:"continue_on_error" default:"false"`
}

// BatchOptions returns the batch options described by the configuration.
func (c Config) BatchOptions() BatchOptions {
	return BatchOptions{
		ContinueOnError: c.ContinueOnError,
		Concurrency:     c.Concurrency,
	}
}
