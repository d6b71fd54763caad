package patient

// Insurance is the patient's health plan.
type Insurance string

const (
	InsuranceSaudeTotal Insurance = "Saúde Total"
	InsuranceMediCare   Insurance = "MediCare"
	InsuranceVidaPlena  Insurance = "VidaPlena"
	InsuranceBemEstar   Insurance = "BemEstar Seguros"
	InsurancePrivate    Insurance = "Particular"
)

var insurances = []Insurance{
	InsuranceSaudeTotal,
	InsuranceMediCare,
	InsuranceVidaPlena,
	InsuranceBemEstar,
	InsurancePrivate,
}

func Insurances() []Insurance {
	out := make([]Insurance, len(insurances))
	copy(out, insurances)
	return out
}

func (i Insurance) IsValid() bool {
	for _, v := range insurances {
		if v == i {
			return true
		}
	}
	return false
}
