package entity

// MenstrualHistory records the menstrual section of the case.
type MenstrualHistory struct {
	CaseModuleBase

	MenarcheAge          int    `json:"menarche_age,omitempty"`
	CycleLengthDays      int    `json:"cycle_length_days,omitempty"`
	DurationDays         int    `json:"duration_days,omitempty"`
	Flow                 string `gorm:"type:varchar(100)" json:"flow,omitempty"`
	Regularity           string `gorm:"type:varchar(100)" json:"regularity,omitempty"`
	LastMenstrualPeriod  string `gorm:"type:varchar(20)" json:"last_menstrual_period,omitempty"`
	Pain                 string `gorm:"type:text" json:"pain,omitempty"`
	PremenstrualSymptoms string `gorm:"type:text" json:"premenstrual_symptoms,omitempty"`
	Menopause            bool   `json:"menopause"`
	MenopauseAge         int    `json:"menopause_age,omitempty"`
}

func (MenstrualHistory) TableName() string {
	return "menstrual_histories"
}
