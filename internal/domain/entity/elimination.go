package entity

// StoolDetail is the stool sub-section of the elimination record.
type StoolDetail struct {
	Frequency   string `gorm:"type:varchar(100)" json:"frequency,omitempty"`
	Consistency string `gorm:"type:varchar(100)" json:"consistency,omitempty"`
	Odor        string `gorm:"type:varchar(100)" json:"odor,omitempty"`
	Complaints  string `gorm:"type:text" json:"complaints,omitempty"`
}

// UrineDetail is the urine sub-section of the elimination record.
type UrineDetail struct {
	Frequency  string `gorm:"type:varchar(100)" json:"frequency,omitempty"`
	Color      string `gorm:"type:varchar(100)" json:"color,omitempty"`
	Odor       string `gorm:"type:varchar(100)" json:"odor,omitempty"`
	Complaints string `gorm:"type:text" json:"complaints,omitempty"`
}

// DischargeDetail is the discharges sub-section of the elimination record.
type DischargeDetail struct {
	Type       string `gorm:"type:varchar(100)" json:"type,omitempty"`
	Color      string `gorm:"type:varchar(100)" json:"color,omitempty"`
	Character  string `gorm:"type:varchar(255)" json:"character,omitempty"`
	Complaints string `gorm:"type:text" json:"complaints,omitempty"`
}

// Elimination records stool, urine and discharge findings as explicit
// nested sections rather than a free-form payload, so a PUT has a
// declared full-replace field list.
type Elimination struct {
	CaseModuleBase

	Stool      StoolDetail     `gorm:"embedded;embeddedPrefix:stool_" json:"stool"`
	Urine      UrineDetail     `gorm:"embedded;embeddedPrefix:urine_" json:"urine"`
	Discharges DischargeDetail `gorm:"embedded;embeddedPrefix:discharge_" json:"discharges"`
	Sweat      string          `gorm:"type:text" json:"sweat,omitempty"`
}

func (Elimination) TableName() string {
	return "eliminations"
}
