package prompt_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-tracker/internal/prompt"
	"employee-tracker/internal/prompt/prompttest"
)

func TestValidateDBString(t *testing.T) {
	assert.NoError(t, prompt.ValidateDBString("Engineering"))
	assert.NoError(t, prompt.ValidateDBString(strings.Repeat("a", 30)))
	assert.Error(t, prompt.ValidateDBString(""))
	assert.Error(t, prompt.ValidateDBString("    "))
	assert.Error(t, prompt.ValidateDBString(strings.Repeat("a", 31)))
}

func TestValidateSalary(t *testing.T) {
	assert.NoError(t, prompt.ValidateSalary(0.01))
	assert.Error(t, prompt.ValidateSalary(0))
	assert.Error(t, prompt.ValidateSalary(-100))
	assert.NoError(t, prompt.ValidateSalary(9_999_999_999.99))
	assert.EqualError(t, prompt.ValidateSalary(1e10), "Salary must be less than 10,000,000,000")
	assert.EqualError(t, prompt.ValidateSalary(math.Inf(1)), "Salary must be a positive number")
	assert.Error(t, prompt.ValidateSalary(math.NaN()))
}

func TestNotInAndAll(t *testing.T) {
	validate := prompt.All(
		prompt.ValidateDBString,
		prompt.NotIn([]string{"Sales"}, "Department '%s' already exists"),
	)

	assert.NoError(t, validate("Legal"))
	assert.EqualError(t, validate(" Sales "), "Department 'Sales' already exists")
	assert.EqualError(t, validate(""), "Please enter a string of 30 characters or less.")
}

func TestPick(t *testing.T) {
	type role struct {
		id    uint
		title string
	}
	roles := []role{{1, "Engineer"}, {2, "Lead"}}
	script := prompttest.New(t, prompttest.Choose("Lead"))

	picked, err := prompt.Pick(context.Background(), script, "Select a role:", roles, func(r role) string { return r.title })
	require.NoError(t, err)
	assert.Equal(t, uint(2), picked.id)
	assert.Equal(t, []string{"Engineer", "Lead"}, script.Shown[0].Choices)

	_, err = prompt.Pick(context.Background(), script, "Select a role:", []role{}, func(r role) string { return r.title })
	assert.Error(t, err)
}

func TestScriptRecordsRejectedAnswers(t *testing.T) {
	script := prompttest.New(t, prompttest.Text(""), prompttest.Text("Ada"), prompttest.Back())

	value, err := script.Text(context.Background(), prompt.TextPrompt{Label: "First name:", Validate: prompt.ValidateDBString})
	require.NoError(t, err)
	assert.Equal(t, "Ada", value)
	assert.Len(t, script.Rejected, 1)

	_, err = script.Confirm(context.Background(), prompt.ConfirmPrompt{Label: "Sure?"})
	assert.ErrorIs(t, err, prompt.ErrBack)
	assert.Equal(t, 0, script.Remaining())
}
