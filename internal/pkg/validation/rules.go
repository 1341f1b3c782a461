package validation

// Questionnaire field keys as the classifier expects them
const (
	FieldGender         = "Gender"
	FieldTechInterest   = "Minat_Teknologi"
	FieldArtInterest    = "Minat_Seni"
	FieldBizInterest    = "Minat_Bisnis"
	FieldLawInterest    = "Minat_Hukum"
	FieldHealthInterest = "Minat_Kesehatan"
	FieldSciInterest    = "Minat_Sains"
	FieldProblemSolving = "Problem_Solving"
	FieldCreativity     = "Kreativitas"
	FieldLeadership     = "Kepemimpinan"
	FieldTeamwork       = "Kerja_Tim"
	FieldFinalGrade     = "nilai akhir SMA/SMK"
)

// Accepted values
var (
	GenderValues   = []string{"Laki-laki", "Perempuan"}
	InterestValues = []string{"Ya", "Tidak"}
	// SkillLevels are ordered from very low to very high
	SkillLevels = []string{"Sangat Rendah", "Rendah", "Sedang", "Tinggi", "Sangat Tinggi"}
)

// Final grade bounds, inclusive
const (
	MinFinalGrade = 0.0
	MaxFinalGrade = 100.0
)

// InterestFields are checked in this order.
var InterestFields = []string{
	FieldTechInterest,
	FieldArtInterest,
	FieldBizInterest,
	FieldLawInterest,
	FieldHealthInterest,
	FieldSciInterest,
}

// SkillFields are checked in this order.
var SkillFields = []string{
	FieldProblemSolving,
	FieldCreativity,
	FieldLeadership,
	FieldTeamwork,
}

// RequiredFields lists every questionnaire key in form order.
var RequiredFields = func() []string {
	fields := []string{FieldGender}
	fields = append(fields, InterestFields...)
	fields = append(fields, SkillFields...)
	return append(fields, FieldFinalGrade)
}()
