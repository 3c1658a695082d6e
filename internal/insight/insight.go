package insight

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/fleetpulse/internal/models"
	"golang.org/x/sync/singleflight"
)

const (
	MsgNotConfigured = "API Key not configured. Unable to generate AI insights."
	MsgUnavailable   = "Unable to generate insight at this time."
	MsgNominal       = "Fleet operating within normal parameters."
)

// generateTimeout bounds a shared generation call once it no longer
// follows any single caller's context.
const generateTimeout = 30 * time.Second

const promptTemplate = `Act as a senior fleet manager AI. Analyze the following fleet status data and provide a concise, strategic insight (max 2 sentences) focusing on optimization or immediate attention items.
Keep the tone professional and "quiet luxury".

Data:
`

// Generator sends a prompt to a text-generation service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Requester turns the fleet into a short advisory text. It never fails:
// every error path resolves to one of the fixed messages.
type Requester struct {
	apiKey    string
	generator Generator
	logger    logrus.FieldLogger
	inflight  singleflight.Group
}

// NewRequester creates a Requester. An empty apiKey leaves it unconfigured,
// in which case generator is never called.
func NewRequester(apiKey string, generator Generator, logger logrus.FieldLogger) *Requester {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Requester{
		apiKey:    apiKey,
		generator: generator,
		logger:    logger,
	}
}

// Configured reports whether a credential is present.
func (r *Requester) Configured() bool {
	return r.apiKey != ""
}

// SummaryLine renders one vehicle as a prompt line.
func SummaryLine(v models.Vehicle) string {
	return v.Model + " (" + string(v.Status) + "): Battery " + strconv.Itoa(v.BatteryLevel) +
		"%, Speed " + strconv.FormatFloat(v.Speed, 'f', -1, 64) +
		"km/h, Efficiency " + v.Efficiency
}

// BuildPrompt embeds one summary line per vehicle in the instruction template.
func BuildPrompt(vehicles []models.Vehicle) string {
	lines := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		lines = append(lines, SummaryLine(v))
	}
	return promptTemplate + strings.Join(lines, "\n")
}

// GenerateInsight asks the generator for an insight about vehicles.
// Concurrent calls with the same fleet share one outbound request, which
// keeps running when the caller that started it goes away.
func (r *Requester) GenerateInsight(ctx context.Context, vehicles []models.Vehicle) string {
	if !r.Configured() {
		return MsgNotConfigured
	}
	if r.generator == nil {
		r.logger.Error("insight generator not initialized")
		return MsgUnavailable
	}

	prompt := BuildPrompt(vehicles)
	ch := r.inflight.DoChan(prompt, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), generateTimeout)
		defer cancel()
		return r.generator.Generate(callCtx, prompt)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		r.logger.WithError(ctx.Err()).Debug("Insight request abandoned")
		return MsgUnavailable
	}
	if res.Err != nil {
		r.logger.WithError(res.Err).WithField("vehicles", len(vehicles)).Error("Insight generation failed")
		return MsgUnavailable
	}

	text := strings.TrimSpace(res.Val.(string))
	if text == "" {
		return MsgNominal
	}
	r.logger.WithFields(logrus.Fields{
		"vehicles": len(vehicles),
		"shared":   res.Shared,
	}).Debug("Insight generated")
	return text
}
