package models

// Court is a playing venue selectable from the referee screen.
type Court struct {
	CourtID  string `json:"courtID" db:"court_id"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location,omitempty" db:"location"`
	IsActive bool   `json:"isActive" db:"is_active"`
	AuditFields
}
