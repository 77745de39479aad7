package domain

import "time"

// EquipmentKind is a category of interchangeable physical items. Quantity is
// the number of units currently available for withdrawal; units out on open
// loans are not included.
type EquipmentKind struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int32     `json:"quantity"`
	Unit      string    `json:"unit"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
