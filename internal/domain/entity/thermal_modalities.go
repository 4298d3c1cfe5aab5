package entity

// ThermalModalities records the patient's thermal reaction and
// weather/season modalities.
type ThermalModalities struct {
	CaseModuleBase

	ThermalReaction    string `gorm:"type:varchar(20)" json:"thermal_reaction,omitempty"`
	SeasonPreference   string `gorm:"type:varchar(100)" json:"season_preference,omitempty"`
	WeatherAggravation string `gorm:"type:text" json:"weather_aggravation,omitempty"`
	BathingPreference  string `gorm:"type:varchar(100)" json:"bathing_preference,omitempty"`
	CoveringPreference string `gorm:"type:varchar(100)" json:"covering_preference,omitempty"`
	FanIntolerance     bool   `json:"fan_intolerance"`
}

func (ThermalModalities) TableName() string {
	return "thermal_modalities"
}

// Thermal reaction constants
const (
	ThermalChilly      = "Chilly"
	ThermalHot         = "Hot"
	ThermalAmbithermal = "Ambithermal"
)
