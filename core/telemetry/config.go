package telemetry

// Config holds tracing configuration.
type Config struct {
	// OTLPEndpoint is the OTLP/HTTP collector URL. Empty disables tracing.
	OTLPEndpoint string `mapstructure:"otlp_endpoint" default:""`
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `mapstructure:"service_name" default:"nft-reconciler"`
}
