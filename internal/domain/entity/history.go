package entity

// History records past and family medical history.
type History struct {
	CaseModuleBase

	PastIllnesses   string `gorm:"type:text" json:"past_illnesses,omitempty"`
	SurgicalHistory string `gorm:"type:text" json:"surgical_history,omitempty"`
	Medications     string `gorm:"type:text" json:"medications,omitempty"`
	Allergies       string `gorm:"type:text" json:"allergies,omitempty"`
	Vaccinations    string `gorm:"type:text" json:"vaccinations,omitempty"`
	FamilyHistory   string `gorm:"type:text" json:"family_history,omitempty"`
}

func (History) TableName() string {
	return "histories"
}
