package session

import (
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/validators"
)

// ===============================
// Session rules
// ===============================

type Category string

const (
	CategoryStrength Category = "strength"
	CategoryMobility Category = "mobility"
)

const (
	MinCapacity = 1
	MaxCapacity = 4
)

func IsValidCategory(c string) bool {
	switch Category(c) {
	case CategoryStrength, CategoryMobility:
		return true
	}
	return false
}

// ValidateNew checks the fields of a session about to be created.
func ValidateNew(timeOfDay, category string, maxCapacity int, price, packagePrice float64) error {
	if !validators.IsTimeOfDay(timeOfDay) {
		return httperr.ErrBusiness("invalid_time_of_day")
	}
	if !IsValidCategory(category) {
		return httperr.ErrBusiness("invalid_category")
	}
	if maxCapacity < MinCapacity || maxCapacity > MaxCapacity {
		return httperr.ErrBusiness("invalid_capacity")
	}
	if price < 0 || packagePrice < 0 {
		return httperr.ErrBusiness("invalid_price")
	}
	return nil
}
