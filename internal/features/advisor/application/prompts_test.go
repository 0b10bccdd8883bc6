package application

import (
	"strings"
	"testing"

	"ai-cofounder/internal/features/advisor/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuilderPrompt_SubstitutesMissingFields(t *testing.T) {
	prompt := BuilderPrompt(domain.IdeaFields{Problem: "X"})

	assert.Contains(t, prompt, "Problem: X")
	assert.Equal(t, 5, strings.Count(prompt, "Not provided"))
	assert.Contains(t, prompt, "Solution: Not provided")
	assert.Contains(t, prompt, "Execution Plan: Not provided")
}

func TestBuilderPrompt_AllFields(t *testing.T) {
	prompt := BuilderPrompt(domain.IdeaFields{
		Problem:      "Late trains",
		Solution:     "Live delay app",
		TargetMarket: "Commuters",
		Revenue:      "Subscriptions",
		Competitors:  "Citymapper",
		Execution:    "Launch in Berlin",
	})

	assert.NotContains(t, prompt, "Not provided")
	for _, line := range []string{
		"Problem: Late trains",
		"Solution: Live delay app",
		"Target Market: Commuters",
		"Revenue Model: Subscriptions",
		"Competitors: Citymapper",
		"Execution Plan: Launch in Berlin",
	} {
		assert.Contains(t, prompt, line)
	}
}

func TestBuilderPrompt_WhitespaceCountsAsMissing(t *testing.T) {
	prompt := BuilderPrompt(domain.IdeaFields{Problem: "  \n", Solution: "S"})
	assert.Contains(t, prompt, "Problem: Not provided")
	assert.Equal(t, 5, strings.Count(prompt, "Not provided"))
}

func TestPrompts_AreDeterministic(t *testing.T) {
	fields := domain.IdeaFields{Problem: "p", Competitors: "c"}
	assert.Equal(t, BuilderPrompt(fields), BuilderPrompt(fields))
	assert.Equal(t, PitchPrompt("pitch"), PitchPrompt("pitch"))
	assert.Equal(t, MotivationPrompt("c"), MotivationPrompt("c"))
	assert.Equal(t, RolePrompt("i", "idea"), RolePrompt("i", "idea"))
}

func TestRolePrompt(t *testing.T) {
	instruction, ok := domain.Instruction(domain.RoleInvestor)
	assert.True(t, ok)

	prompt := RolePrompt(instruction, "Drone delivery")
	assert.Equal(t, instruction+"\nStartup Idea:\nDrone delivery\n", prompt)
}

func TestPitchAndMotivationPrompts(t *testing.T) {
	pitch := PitchPrompt("We sell shovels")
	assert.Contains(t, pitch, "score out of 10")
	assert.Contains(t, pitch, "Pitch: We sell shovels")

	motivation := MotivationPrompt("no funding")
	assert.Contains(t, motivation, "My challenge is: no funding.")
	assert.Contains(t, motivation, "pivoted to success")
}

func TestPrompts_NoEscapingOrRecursion(t *testing.T) {
	prompt := PitchPrompt("100% {pitch} %s")
	assert.Contains(t, prompt, "Pitch: 100% {pitch} %s")
}
