// Package ai wraps the external language-model collaborator used by the
// mock-interview flow. The model is treated as an opaque text generator: a
// slow or failing call degrades to a canned question, never to an error.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/hirewire/hirewire/pkg/logger"
	"github.com/hirewire/hirewire/pkg/metrics"
)

const systemPrompt = "You are a professional technical interviewer."

// fallbackQuestions answer for the model when it is unreachable. Keys are
// matched as substrings of the lower-cased job role.
var fallbackQuestions = map[string]string{
	"frontend developer":  "Can you explain the difference between React's useState and useEffect hooks?",
	"backend developer":   "How would you design a RESTful API for a blogging platform?",
	"fullstack developer": "Describe your approach to handling authentication in a web application.",
	"data scientist":      "How would you handle missing data in a dataset before training a model?",
	"devops engineer":     "Explain the concept of Infrastructure as Code and its benefits.",
}

// Config configures the interviewer client.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Interviewer produces interview questions for a job role, optionally
// following up on the candidate's previous answer.
type Interviewer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

// NewInterviewer builds the client. An empty API key yields an interviewer
// that serves fallback questions only, which keeps the flow usable offline.
func NewInterviewer(ctx context.Context, cfg Config) (*Interviewer, error) {
	iv := &Interviewer{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     logger.WithModule("ai"),
	}
	if iv.model == "" {
		iv.model = "gemini-2.5-flash"
	}
	if iv.timeout <= 0 {
		iv.timeout = 15 * time.Second
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		iv.log.Warn("no AI API key configured; interview questions fall back to the built-in bank")
		return iv, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("ai: create client: %w", err)
	}
	iv.client = client
	return iv, nil
}

// NextQuestion returns the next interview question for jobRole. When
// lastAnswer is non-empty the question follows up on it. The call is bounded
// by the configured timeout and never fails: any model error falls back to
// the canned bank.
func (iv *Interviewer) NextQuestion(ctx context.Context, jobRole, lastAnswer string) string {
	if iv.client == nil {
		metrics.InterviewQuestions.WithLabelValues("fallback").Inc()
		return FallbackQuestion(jobRole)
	}

	ctx, cancel := context.WithTimeout(ctx, iv.timeout)
	defer cancel()

	temperature := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   100,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}

	resp, err := iv.client.Models.GenerateContent(ctx, iv.model, genai.Text(iv.prompt(jobRole, lastAnswer)), config)
	if err != nil {
		iv.log.Warn("question generation failed", zap.String("job_role", jobRole), zap.Error(err))
		metrics.InterviewQuestions.WithLabelValues("fallback").Inc()
		return FallbackQuestion(jobRole)
	}

	question := strings.TrimSpace(resp.Text())
	if question == "" {
		metrics.InterviewQuestions.WithLabelValues("fallback").Inc()
		return FallbackQuestion(jobRole)
	}

	metrics.InterviewQuestions.WithLabelValues("model").Inc()
	return question
}

func (iv *Interviewer) prompt(jobRole, lastAnswer string) string {
	if strings.TrimSpace(lastAnswer) != "" {
		return fmt.Sprintf(
			"You are conducting an interview for the role of %s.\n\n"+
				"The candidate just answered: %q\n\n"+
				"Based on their answer, ask the next appropriate technical or behavioral question.\n\n"+
				"Keep the question focused, relevant to the role, and challenging but fair.\n"+
				"Maximum 2 sentences.",
			jobRole, lastAnswer)
	}
	return fmt.Sprintf(
		"You are conducting an interview for the role of %s.\n\n"+
			"Ask the first technical or behavioral question for this role.\n\n"+
			"Make it relevant, challenging, and something that would help assess the candidate's skills.\n"+
			"Maximum 2 sentences.",
		jobRole)
}

// FallbackQuestion picks a canned question for the job role.
func FallbackQuestion(jobRole string) string {
	role := strings.ToLower(jobRole)
	for key, question := range fallbackQuestions {
		if strings.Contains(role, key) {
			return question
		}
	}
	return fmt.Sprintf("For the role of %s, what experience do you have with relevant technologies?", jobRole)
}
