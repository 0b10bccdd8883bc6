package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles_OrderAndDefault(t *testing.T) {
	assert.Equal(t, []Role{
		RoleProductManager,
		RoleInvestor,
		RoleGrowthHacker,
		RoleTechnicalAdvisor,
		RoleMarketingExpert,
	}, Roles())
	assert.Equal(t, RoleProductManager, DefaultRole())
}

func TestInstruction(t *testing.T) {
	for _, role := range Roles() {
		instruction, ok := Instruction(role)
		assert.True(t, ok, role)
		assert.NotEmpty(t, instruction)
	}

	_, ok := Instruction("Chef")
	assert.False(t, ok)
}

func TestRoles_ReturnsCopy(t *testing.T) {
	roles := Roles()
	roles[0] = "Mutated"
	assert.Equal(t, RoleProductManager, Roles()[0])
}
