package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-cofounder/internal/features/advisor/domain"
	"ai-cofounder/internal/features/advisor/infrastructure"

	"go.uber.org/zap"
)

// Placeholder messages returned without calling the generator.
const (
	EmptyIdeaMessage      = "Please enter a startup idea to get started!"
	EmptyPitchMessage     = "Please enter your pitch to get feedback!"
	EmptyChallengeMessage = "Share what's challenging you today, and I'll help motivate you!"
)

// Prefixes used when a generation call fails.
const (
	roleErrorPrefix       = "Error generating response: "
	builderErrorPrefix    = "Error generating analysis: "
	pitchErrorPrefix      = "Error evaluating pitch: "
	motivationErrorPrefix = "Error generating motivation: "
)

// AdvisorService defines the four panel operations. Every operation returns
// the text to display; failures are rendered into that text.
type AdvisorService interface {
	AnalyzeRole(ctx context.Context, role domain.Role, idea string) string
	BuildIdea(ctx context.Context, fields domain.IdeaFields) string
	JudgePitch(ctx context.Context, pitch string) string
	Motivate(ctx context.Context, challenge string) string
}

// advisorService is the implementation of AdvisorService.
type advisorService struct {
	generator infrastructure.Generator
	timeout   time.Duration
	logger    *zap.Logger
}

// NewAdvisorService creates a new instance of advisorService. A non-positive
// timeout disables the per-call deadline.
func NewAdvisorService(generator infrastructure.Generator, timeout time.Duration, logger *zap.Logger) AdvisorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &advisorService{generator: generator, timeout: timeout, logger: logger}
}

// AnalyzeRole asks the generator for feedback on idea from the perspective of role.
func (s *advisorService) AnalyzeRole(ctx context.Context, role domain.Role, idea string) string {
	if isBlank(idea) {
		return EmptyIdeaMessage
	}
	instruction, ok := domain.Instruction(role)
	if !ok {
		return roleErrorPrefix + fmt.Sprintf("unknown role %q", role)
	}
	return s.generate(ctx, domain.PanelRole, RolePrompt(instruction, idea), roleErrorPrefix)
}

// BuildIdea asks for a comprehensive analysis of the structured idea. Missing
// fields are substituted, so this always reaches the generator.
func (s *advisorService) BuildIdea(ctx context.Context, fields domain.IdeaFields) string {
	return s.generate(ctx, domain.PanelBuilder, BuilderPrompt(fields), builderErrorPrefix)
}

// JudgePitch asks for a score out of 10 and feedback on pitch.
func (s *advisorService) JudgePitch(ctx context.Context, pitch string) string {
	if isBlank(pitch) {
		return EmptyPitchMessage
	}
	return s.generate(ctx, domain.PanelPitch, PitchPrompt(pitch), pitchErrorPrefix)
}

// Motivate asks for motivational advice about challenge.
func (s *advisorService) Motivate(ctx context.Context, challenge string) string {
	if isBlank(challenge) {
		return EmptyChallengeMessage
	}
	return s.generate(ctx, domain.PanelMotivation, MotivationPrompt(challenge), motivationErrorPrefix)
}

// generate performs exactly one generation call. Errors never escape: they
// are logged and returned as errPrefix followed by the error text.
func (s *advisorService) generate(ctx context.Context, panel domain.Panel, prompt, errPrefix string) string {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.callGenerator(ctx, prompt)
	if err != nil {
		s.logger.Error("generation failed",
			zap.String("panel", string(panel)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return errPrefix + err.Error()
	}
	s.logger.Debug("generation succeeded",
		zap.String("panel", string(panel)),
		zap.Int("prompt_len", len(prompt)),
		zap.Int("output_len", len(text)),
		zap.Duration("elapsed", time.Since(start)))
	return text
}

// callGenerator converts a panic inside the generator into an error so that a
// misbehaving client cannot take down the request.
func (s *advisorService) callGenerator(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v", r)
		}
	}()
	if s.generator == nil {
		return "", errors.New("no generator configured")
	}
	return s.generator.Generate(ctx, prompt)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
