package doctor

type Specialty string

const (
	SpecialtyGeneralPractice Specialty = "Clínica Geral"
	SpecialtyPediatrics      Specialty = "Pediatria"
	SpecialtyGynecology      Specialty = "Ginecologia"
	SpecialtyDermatology     Specialty = "Dermatologia"
	SpecialtyOrthopedics     Specialty = "Ortopedia"
	SpecialtyCardiology      Specialty = "Cardiologia"
	SpecialtyNutrition       Specialty = "Nutrição"
)

var specialties = []Specialty{
	SpecialtyGeneralPractice,
	SpecialtyPediatrics,
	SpecialtyGynecology,
	SpecialtyDermatology,
	SpecialtyOrthopedics,
	SpecialtyCardiology,
	SpecialtyNutrition,
}

func Specialties() []Specialty {
	out := make([]Specialty, len(specialties))
	copy(out, specialties)
	return out
}

func (s Specialty) IsValid() bool {
	for _, v := range specialties {
		if v == s {
			return true
		}
	}
	return false
}
