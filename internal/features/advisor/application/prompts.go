package application

import (
	"fmt"
	"strings"

	"ai-cofounder/internal/features/advisor/domain"
)

const rolePromptTemplate = "%s\nStartup Idea:\n%s\n"

const builderPromptTemplate = `
Startup Idea Analysis

Problem: %s
Solution: %s
Target Market: %s
Revenue Model: %s
Competitors: %s
Execution Plan: %s

Please provide a comprehensive analysis, feedback, and suggestions for improvement.
`

const pitchPromptTemplate = `
You are a startup pitch judge. Read the following pitch and provide a score out of 10, with detailed feedback and suggestions for improvement.

Pitch: %s
`

const motivationPromptTemplate = `
I am a startup founder. My challenge is: %s.
Give me short motivational advice, and an example of a famous startup that failed but later pivoted to success.
`

// RolePrompt frames idea with a role's instruction prefix, as returned by
// domain.Instruction. Unknown roles are rejected by the caller.
func RolePrompt(instruction, idea string) string {
	return fmt.Sprintf(rolePromptTemplate, instruction, idea)
}

// BuilderPrompt renders the structured idea builder template. Each empty
// field becomes domain.NotProvided.
func BuilderPrompt(f domain.IdeaFields) string {
	return fmt.Sprintf(builderPromptTemplate,
		orNotProvided(f.Problem),
		orNotProvided(f.Solution),
		orNotProvided(f.TargetMarket),
		orNotProvided(f.Revenue),
		orNotProvided(f.Competitors),
		orNotProvided(f.Execution),
	)
}

// PitchPrompt asks for a scored critique of pitch.
func PitchPrompt(pitch string) string {
	return fmt.Sprintf(pitchPromptTemplate, pitch)
}

// MotivationPrompt asks for advice on challenge.
func MotivationPrompt(challenge string) string {
	return fmt.Sprintf(motivationPromptTemplate, challenge)
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return domain.NotProvided
	}
	return s
}
