package prometheus

import "github.com/prometheus/client_golang/prometheus"

// Monitor represents a Prometheus monitor
// It contains Prometheus registry and all available metrics
type Monitor struct {
	Registry *prometheus.Registry

	FetchAttempts *prometheus.CounterVec
	FetchRetries  *prometheus.CounterVec
	FetchBlocked  *prometheus.CounterVec

	ToolCalls *prometheus.CounterVec

	AnthropicInputTokens  *prometheus.CounterVec
	AnthropicOutputTokens *prometheus.CounterVec
	OpenAiInputTokens     *prometheus.CounterVec
	OpenAiOutputTokens    *prometheus.CounterVec
}

// New creates a new Monitor
func New() *Monitor {
	reg := prometheus.NewRegistry()
	monitor := &Monitor{
		Registry: reg,

		FetchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_fetch_attempts_total",
			Help: "Total number of page fetch attempts",
		}, []string{}),

		FetchRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_fetch_retries_total",
			Help: "Total number of retried fetch attempts",
		}, []string{}),

		FetchBlocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_fetch_blocked_total",
			Help: "Total number of requests blocked by the site",
		}, []string{}),

		ToolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_tool_calls_total",
			Help: "Total number of agent tool invocations",
		}, []string{"tool"}),

		AnthropicInputTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_anthropic_input_tokens",
			Help: "Total number of input tokens billed by Anthropic",
		}, []string{}),

		AnthropicOutputTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_anthropic_output_tokens",
			Help: "Total number of output tokens billed by Anthropic",
		}, []string{}),

		OpenAiInputTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_openai_input_tokens",
			Help: "Total number of input tokens billed by OpenAI",
		}, []string{}),

		OpenAiOutputTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "explorer_openai_output_tokens",
			Help: "Total number of output tokens billed by OpenAI",
		}, []string{}),
	}

	reg.MustRegister(
		monitor.FetchAttempts,
		monitor.FetchRetries,
		monitor.FetchBlocked,
		monitor.ToolCalls,
		monitor.AnthropicInputTokens,
		monitor.AnthropicOutputTokens,
		monitor.OpenAiInputTokens,
		monitor.OpenAiOutputTokens,
	)

	return monitor
}
