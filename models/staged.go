package models

// StagedReservation is an unconfirmed online submission awaiting promotion or expiry.
type StagedReservation struct {
	ID              int64   `bson:"id" json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string  `bson:"name" json:"name"`
	MobileNumber    string  `bson:"mobile_number" json:"mobile_number"`
	Location        string  `bson:"location" json:"location"`
	Notes           string  `bson:"notes,omitempty" json:"notes,omitempty"`
	Choices         string  `bson:"choices,omitempty" json:"choices,omitempty"`
	Package         string  `bson:"package,omitempty" json:"package,omitempty"`
	Pax             int     `bson:"pax" json:"pax"`
	ReservationDate string  `bson:"reservation_date" json:"reservation_date" gorm:"index"`
	TotalPrice      float64 `bson:"total_price" json:"total_price"`
}

func (StagedReservation) TableName() string { return "online_reservations" }

// Official builds the official reservation a promotion inserts.
func (s StagedReservation) Official() Reservation {
	stagedID := s.ID
	return Reservation{
		Name:            s.Name,
		MobileNumber:    s.MobileNumber,
		Location:        s.Location,
		Notes:           s.Notes,
		Choices:         s.Choices,
		Package:         s.Package,
		Pax:             s.Pax,
		ReservationDate: s.ReservationDate,
		TotalPrice:      s.TotalPrice,
		Type:            ReservationTypeOnline,
		StagedID:        &stagedID,
	}
}
