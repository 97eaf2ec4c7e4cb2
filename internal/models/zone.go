package models

// Zone represents one row of the TLC taxi zone lookup table
type Zone struct {
	LocationID int64  `json:"location_id" db:"location_id"`
	Borough    string `json:"borough" db:"borough"`
	Name       string `json:"zone" db:"zone"`
}

// PaymentTypeOption feeds the dashboard's payment type multiselect
type PaymentTypeOption struct {
	Code  int64  `json:"code"`
	Label string `json:"label"`
}
