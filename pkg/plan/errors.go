package plan

import "errors"

var (
	ErrNoPlans               = errors.New("at least one price plan is required")
	ErrInvalidCatalog        = errors.New("invalid plan catalog configuration")
	ErrDuplicatePlanID       = errors.New("duplicate plan ID in catalog")
	ErrDuplicatePriceID      = errors.New("duplicate price ID in catalog")
	ErrMultipleFreePlans     = errors.New("catalog defines more than one free plan")
	ErrFailedToLoadPlans     = errors.New("failed to load price plans")
	ErrFreePlanWithPrices    = errors.New("free plan must not define prices")
	ErrPlanWithoutPrices     = errors.New("paid plan must define at least one price")
	ErrLifetimeWithRecurring = errors.New("lifetime plan must not define recurring prices")
	ErrPlanNotFound          = errors.New("plan not found in catalog")
	ErrPriceNotFound         = errors.New("price not found in catalog")
)
