package observability

// Config конфигурация OpenTelemetry для warehouse
type Config struct {
	// Enabled включить экспорт в OTLP collector, иначе ставятся noop providers
	Enabled bool
	// OTLPEndpoint адрес OTLP gRPC, например "127.0.0.1:4317"
	OTLPEndpoint string
	// SamplingRatio доля трасс (0..1)
	SamplingRatio float64
	// ServiceName попадает в resource как service.name
	ServiceName string
	// DeploymentEnvironment local или docker
	DeploymentEnvironment string
	ServiceVersion        string
}
