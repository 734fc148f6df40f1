package models

import "time"

const (
	ReservationTypeWalkIn = "Walk-in"
	ReservationTypeOnline = "online"
)

// Reservation is a confirmed booking in the official reservations table.
type Reservation struct {
	ID              int64     `bson:"id" json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string    `bson:"name" json:"name"`
	MobileNumber    string    `bson:"mobile_number" json:"mobile_number"`
	Location        string    `bson:"location" json:"location"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Choices         string    `bson:"choices,omitempty" json:"choices,omitempty"` // Free-text food choices
	Package         string    `bson:"package,omitempty" json:"package,omitempty"`
	Pax             int       `bson:"pax" json:"pax"`                                           // Expected guest count
	ReservationDate string    `bson:"reservation_date" json:"reservation_date" gorm:"index"` // "YYYY-MM-DD"
	TotalPrice      float64   `bson:"total_price" json:"total_price"`
	Type            string    `bson:"type" json:"type"` // "Walk-in" or "online"
	StagedID        *int64    `bson:"staged_id,omitempty" json:"staged_id,omitempty" gorm:"uniqueIndex"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

func (Reservation) TableName() string { return "official_reservations" }

// IsOnline reports whether the reservation came through the online booking flow.
func (r Reservation) IsOnline() bool {
	return equalFold(r.Type, ReservationTypeOnline)
}

// ReservationInput is the payload of a create request.
type ReservationInput struct {
	Name            string  `json:"name" validate:"required"`
	MobileNumber    string  `json:"mobile_number" validate:"required"`
	Location        string  `json:"location" validate:"required"`
	Notes           string  `json:"notes"`
	Choices         string  `json:"choices"`
	Package         string  `json:"package"`
	Pax             int     `json:"pax" validate:"gt=0"`
	ReservationDate string  `json:"reservation_date" validate:"required"`
	TotalPrice      float64 `json:"total_price" validate:"gte=0"`
	Type            string  `json:"type" validate:"omitempty,oneof=Walk-in online"`
}

// ReservationPatch carries only the fields an update supplies.
type ReservationPatch struct {
	Name            *string  `json:"name"`
	MobileNumber    *string  `json:"mobile_number"`
	Location        *string  `json:"location"`
	Notes           *string  `json:"notes"`
	Choices         *string  `json:"choices"`
	Package         *string  `json:"package"`
	Pax             *int     `json:"pax"`
	ReservationDate *string  `json:"reservation_date"`
	TotalPrice      *float64 `json:"total_price"`
	Type            *string  `json:"type"`
}

// Apply copies the supplied fields onto r.
func (p ReservationPatch) Apply(r *Reservation) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.MobileNumber != nil {
		r.MobileNumber = *p.MobileNumber
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.Choices != nil {
		r.Choices = *p.Choices
	}
	if p.Package != nil {
		r.Package = *p.Package
	}
	if p.Pax != nil {
		r.Pax = *p.Pax
	}
	if p.ReservationDate != nil {
		r.ReservationDate = *p.ReservationDate
	}
	if p.TotalPrice != nil {
		r.TotalPrice = *p.TotalPrice
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
}

// Fields returns the patch as column name -> value for partial store updates.
func (p ReservationPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.MobileNumber != nil {
		fields["mobile_number"] = *p.MobileNumber
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.Notes != nil {
		fields["notes"] = *p.Notes
	}
	if p.Choices != nil {
		fields["choices"] = *p.Choices
	}
	if p.Package != nil {
		fields["package"] = *p.Package
	}
	if p.Pax != nil {
		fields["pax"] = *p.Pax
	}
	if p.ReservationDate != nil {
		fields["reservation_date"] = *p.ReservationDate
	}
	if p.TotalPrice != nil {
		fields["total_price"] = *p.TotalPrice
	}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	return fields
}

// ReservationPage is one listing result.
type ReservationPage struct {
	Reservations []Reservation `json:"reservations"`
	TotalCount   int64         `json:"total_count"`
	Page         int           `json:"page,omitempty"`
	PageSize     int           `json:"page_size,omitempty"`
}

// DateRange bounds a listing by reservation date. Empty bounds are open.
type DateRange struct {
	From string
	To   string
}

func (d DateRange) IsZero() bool { return d.From == "" && d.To == "" }

// Contains reports whether date lies within the range, inclusive.
func (d DateRange) Contains(date string) bool {
	if d.From != "" && date < d.From {
		return false
	}
	if d.To != "" && date > d.To {
		return false
	}
	return true
}
