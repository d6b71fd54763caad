package patient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

func TestInsurance_IsValid(t *testing.T) {
	for _, i := range Insurances() {
		assert.True(t, i.IsValid(), i)
	}
	assert.False(t, Insurance("Unimed").IsValid())
}

func TestApply(t *testing.T) {
	p := &models.Patient{Name: "João Lima", Phone: "11999990000"}
	plan := InsurancePrivate

	Apply(p, Patch{Insurance: &plan})

	assert.Equal(t, "11999990000", p.Phone)
	require.NotNil(t, p.InsurancePlan)
	assert.Equal(t, "Particular", *p.InsurancePlan)
	assert.Nil(t, p.Email)
}
