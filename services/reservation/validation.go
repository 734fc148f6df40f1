package reservation

import (
	"errors"
	"fmt"
	"strings"

	"catering/models"
	"catering/utils"

	"github.com/go-playground/validator/v10"
)

var fieldLabels = map[string]string{
	"Name":            "name",
	"MobileNumber":    "mobile number",
	"Location":        "location",
	"Pax":             "guest count",
	"ReservationDate": "reservation date",
	"TotalPrice":      "total price",
	"Type":            "type",
}

// describe turns the first validator failure into a readable message.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = strings.ToLower(fe.Field())
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "gt":
		return label + " must be positive"
	case "gte":
		return label + " must not be negative"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return label + " is invalid"
	}
}

func (s *DefaultReservationService) validateInput(op string, in *models.ReservationInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	in.MobileNumber = strings.TrimSpace(in.MobileNumber)
	if in.Type == "" {
		in.Type = models.ReservationTypeWalkIn
	}
	if err := s.validate.Struct(in); err != nil {
		return utils.ValidationError(op, describe(err))
	}
	if _, err := utils.ParseDate(in.ReservationDate, s.Location); err != nil {
		return utils.ValidationError(op, err.Error())
	}
	return nil
}

// validatePatch applies the create rules to every supplied field.
func (s *DefaultReservationService) validatePatch(op string, p models.ReservationPatch) error {
	if len(p.Fields()) == 0 {
		return utils.ValidationError(op, "no fields to update")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return utils.ValidationError(op, "name is required")
	}
	if p.MobileNumber != nil && strings.TrimSpace(*p.MobileNumber) == "" {
		return utils.ValidationError(op, "mobile number is required")
	}
	if p.Location != nil && strings.TrimSpace(*p.Location) == "" {
		return utils.ValidationError(op, "location is required")
	}
	if p.Pax != nil && *p.Pax <= 0 {
		return utils.ValidationError(op, "guest count must be positive")
	}
	if p.TotalPrice != nil && *p.TotalPrice < 0 {
		return utils.ValidationError(op, "total price must not be negative")
	}
	if p.ReservationDate != nil {
		if _, err := utils.ParseDate(*p.ReservationDate, s.Location); err != nil {
			return utils.ValidationError(op, err.Error())
		}
	}
	if p.Type != nil && *p.Type != models.ReservationTypeWalkIn && *p.Type != models.ReservationTypeOnline {
		return utils.ValidationError(op, "type must be one of Walk-in, online")
	}
	return nil
}
