package ai

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/pgiorgini/deliveroo-explorer/pkg/config"
	"github.com/pgiorgini/deliveroo-explorer/pkg/deliveroo"
	"github.com/pgiorgini/deliveroo-explorer/pkg/prometheus"
	"github.com/pgiorgini/deliveroo-explorer/pkg/utils"
	"github.com/sirupsen/logrus"
)

// prompt is the most important part of the assistant. It tells the model
// it is a food scout and that every fact must come from the tools.
//
//go:embed ai.prompt
var prompt string

func renderPrompt() string {
	renderedPrompt := strings.ReplaceAll(prompt, "${datetime}", utils.FormatDate(time.Now()))

	return renderedPrompt
}

// safetyLoopLimit bounds the tool-solving loop. The model should never
// need more than a couple of rounds of search plus menu fetches.
const safetyLoopLimit = 10

type ModelQuality uint8

const (
	ModelQualityLow ModelQuality = iota
	ModelQualityHigh
)

type Provider interface {
	GetResponse(history []ChatMessage, quality ModelQuality) (Response, error)
}

type Ai struct {
	providers map[string]Provider
}

func NewAi(ctx context.Context, conf *config.Config, e *deliveroo.Explorer, m *prometheus.Monitor, l *logrus.Logger) *Ai {
	return &Ai{
		providers: map[string]Provider{
			"openai":    NewOpenAi(ctx, conf, e, m, l),
			"anthropic": NewAnthropic(ctx, conf, e, m, l),
		},
	}
}

func (ai *Ai) GetResponse(history []ChatMessage) (Response, error) {
	const providerName = "anthropic"
	p, ok := ai.providers[providerName]
	if !ok {
		return Response{}, fmt.Errorf("unknown provider: %s", providerName)
	}

	return p.GetResponse(history, ModelQualityLow)
}

type ChatMessage struct {
	Text string `json:"text"`
	From string `json:"from"` // me means the user. Anything else is the assistant
}

type Response struct {
	Text string `json:"text"`
	Cost Cost   `json:"cost"`
}

type Cost struct {
	Input  int `json:"input"`
	Output int `json:"output"`
}

type SchemaType uint8

const (
	SchemaTypeObject SchemaType = iota
	SchemaTypeArray
	SchemaTypeBoolean
	SchemaTypeInteger
	SchemaTypeNumber
	SchemaTypeString
)

type Tool struct {
	Name        string
	Description string
	HasSchema   bool
	Schema      Property

	Fn func(string) (string, error)
}

type Property struct {
	Type        SchemaType
	Description string
	Properties  map[string]Property
	Enum        []interface{} // depends on the type
	Required    []string
}

// GetEnumAsStrings returns the Enum field as a slice of strings.
// it is useful for services which does support strings only (like Anthropic)
// basically we convert all values to strings
func (d *Property) GetEnumAsStrings() []string {
	if d.Enum == nil {
		return nil
	}

	ret := make([]string, len(d.Enum))
	for i, v := range d.Enum {
		ret[i] = fmt.Sprint(v)
	}

	return ret
}

const Me = "me" // user
