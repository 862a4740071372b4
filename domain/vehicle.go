package domain

import (
	"time"
)

// CREATE TABLE public.vehicles (
//     id                BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     make              TEXT NOT NULL,
//     model             TEXT NOT NULL,
//     year              INT,
//     body_type         TEXT NOT NULL,
//     msrp              NUMERIC NOT NULL,
//     federal_incentive NUMERIC DEFAULT 0,
//     state_incentive   NUMERIC DEFAULT 0,
//     local_incentive   NUMERIC DEFAULT 0,
//     epa_range         INT,
//     dc_max_kw         NUMERIC,
//     tech_score        INT,
//     eco_score         INT,
//     image_url         TEXT,
//     created_at        TIMESTAMPTZ DEFAULT NOW(),
//     updated_at        TIMESTAMPTZ DEFAULT NOW()
// );

type VehicleIncentives struct {
	Federal float64 `gorm:"column:federal_incentive;type:numeric;default:0" json:"federal"`
	State   float64 `gorm:"column:state_incentive;type:numeric;default:0" json:"state"`
	Local   float64 `gorm:"column:local_incentive;type:numeric;default:0" json:"local"`
}

type VehiclePrice struct {
	MSRP       float64           `gorm:"column:msrp;type:numeric;not null" json:"msrp"`
	Incentives VehicleIncentives `gorm:"embedded" json:"incentives"`
}

type VehicleSpecifications struct {
	EPARange int     `gorm:"column:epa_range" json:"epa_range"`
	DCMaxKW  float64 `gorm:"column:dc_max_kw;type:numeric" json:"dc_max_kw"`
}

type Vehicle struct {
	ID             uint64                `gorm:"primaryKey;autoIncrement" json:"id"`
	Make           string                `gorm:"column:make;type:text;not null" json:"make"`
	Model          string                `gorm:"column:model;type:text;not null" json:"model"`
	Year           int                   `gorm:"column:year" json:"year"`
	BodyType       string                `gorm:"column:body_type;type:text;not null" json:"body_type"`
	Price          VehiclePrice          `gorm:"embedded" json:"price"`
	Specifications VehicleSpecifications `gorm:"embedded" json:"specifications"`
	TechScore      int                   `gorm:"column:tech_score" json:"tech_score"`
	EcoScore       int                   `gorm:"column:eco_score" json:"eco_score"`
	ImageURL       string                `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt      time.Time             `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time             `gorm:"column:updated_at" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
