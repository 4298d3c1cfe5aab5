package entity

// SexualFunction records the sexual history section of the case.
type SexualFunction struct {
	CaseModuleBase

	Desire    string `gorm:"type:varchar(100)" json:"desire,omitempty"`
	Function  string `gorm:"type:text" json:"function,omitempty"`
	Disorders string `gorm:"type:text" json:"disorders,omitempty"`
	History   string `gorm:"type:text" json:"history,omitempty"`
}

func (SexualFunction) TableName() string {
	return "sexual_functions"
}
