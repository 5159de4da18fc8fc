package models

// SpeedLimits holds km/h limits for one vehicle category.
type SpeedLimits struct {
	City       int `bson:"city" json:"city" binding:"required"`
	Highway    int `bson:"highway" json:"highway" binding:"required"`
	SchoolZone int `bson:"school_zone" json:"school_zone" binding:"required"`
}

// MandatoryItems lists equipment that must be carried in the vehicle.
type MandatoryItems struct {
	FirstAidKit     bool `bson:"first_aid_kit" json:"first_aid_kit"`
	WarningTriangle bool `bson:"warning_triangle" json:"warning_triangle"`
	ReflectiveVests bool `bson:"reflective_vests" json:"reflective_vests"`
	SpareTire       bool `bson:"spare_tire" json:"spare_tire"`
}

// AcceptedDriverIDs marks which driving licence conventions are honored.
type AcceptedDriverIDs struct {
	Vienna   bool `bson:"vienna" json:"vienna"`
	Geneva   bool `bson:"geneva" json:"geneva"`
	EU       bool `bson:"eu" json:"eu"`
	American bool `bson:"american" json:"american"`
}

type OtherRules struct {
	MandatoryItems    MandatoryItems    `bson:"mandatory_items" json:"mandatory_items"`
	SeatbeltMandatory bool              `bson:"seatbelt_mandatory" json:"seatbelt_mandatory"`
	AlcoholLimit      float64           `bson:"alcohol_limit" json:"alcohol_limit"`
	DrivingAgeLimit   int               `bson:"driving_age_limit" json:"driving_age_limit"`
	AcceptedDriverIDs AcceptedDriverIDs `bson:"accepted_driver_ids" json:"accepted_driver_ids"`
}

type Fees struct {
	Highway   bool `bson:"highway" json:"highway"`
	TollPrice int  `bson:"toll_price" json:"toll_price"`
}

// RoadRegulation is reference data keyed by country, one document per country.
// Speed limits are grouped by vehicle category ("car", "truck", ...).
type RoadRegulation struct {
	CountryName string                 `bson:"country_name" json:"country_name" binding:"required"`
	SpeedLimits map[string]SpeedLimits `bson:"speed_limits" json:"speed_limits" binding:"required"`
	OtherRules  OtherRules             `bson:"other_rules" json:"other_rules"`
	Fees        Fees                   `bson:"fees" json:"fees"`
}
