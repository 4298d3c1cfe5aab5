package entity

// PhysicalGenerals records the patient's physical constitution and generals.
type PhysicalGenerals struct {
	CaseModuleBase

	Build        string `gorm:"type:varchar(100)" json:"build,omitempty"`
	Complexion   string `gorm:"type:varchar(100)" json:"complexion,omitempty"`
	Appetite     string `gorm:"type:text" json:"appetite,omitempty"`
	Thirst       string `gorm:"type:text" json:"thirst,omitempty"`
	Cravings     string `gorm:"type:text" json:"cravings,omitempty"`
	Aversions    string `gorm:"type:text" json:"aversions,omitempty"`
	Perspiration string `gorm:"type:text" json:"perspiration,omitempty"`
	Energy       string `gorm:"type:varchar(100)" json:"energy,omitempty"`
	Tongue       string `gorm:"type:varchar(255)" json:"tongue,omitempty"`
	WeightKg     int    `json:"weight_kg,omitempty"`
}

func (PhysicalGenerals) TableName() string {
	return "physical_generals"
}
