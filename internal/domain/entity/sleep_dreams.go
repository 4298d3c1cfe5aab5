package entity

// SleepDreams records sleep quality and dream themes.
type SleepDreams struct {
	CaseModuleBase

	Quality           string `gorm:"type:varchar(100)" json:"quality,omitempty"`
	Position          string `gorm:"type:varchar(100)" json:"position,omitempty"`
	TimeToFallAsleep  string `gorm:"type:varchar(100)" json:"time_to_fall_asleep,omitempty"`
	WakingTime        string `gorm:"type:varchar(100)" json:"waking_time,omitempty"`
	RefreshedOnWaking bool   `json:"refreshed_on_waking"`
	Snoring           bool   `json:"snoring"`
	Dreams            string `gorm:"type:text" json:"dreams,omitempty"`
	DreamThemes       string `gorm:"type:text" json:"dream_themes,omitempty"`
}

func (SleepDreams) TableName() string {
	return "sleep_dreams"
}
