package entity

// Digestion records digestive function and food modalities.
type Digestion struct {
	CaseModuleBase

	Appetite      string `gorm:"type:varchar(100)" json:"appetite,omitempty"`
	ThirstLevel   int    `json:"thirst_level,omitempty"`
	Acidity       string `gorm:"type:varchar(100)" json:"acidity,omitempty"`
	Flatulence    string `gorm:"type:varchar(100)" json:"flatulence,omitempty"`
	Eructations   string `gorm:"type:varchar(100)" json:"eructations,omitempty"`
	Nausea        string `gorm:"type:varchar(100)" json:"nausea,omitempty"`
	BowelHabit    string `gorm:"type:varchar(255)" json:"bowel_habit,omitempty"`
	FoodCravings  string `gorm:"type:text" json:"food_cravings,omitempty"`
	FoodAversions string `gorm:"type:text" json:"food_aversions,omitempty"`
	Intolerances  string `gorm:"type:text" json:"intolerances,omitempty"`
}

func (Digestion) TableName() string {
	return "digestions"
}
