package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration returns an error unless d > 0.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateNonNegativeDuration returns an error when d < 0.
// Zero is accepted and usually means "disabled".
func ValidateNonNegativeDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("duration must not be negative, got %v", d)
	}
	return nil
}

// ValidateDurationRange checks min <= d <= max.
func ValidateDurationRange(d, minDur, maxDur time.Duration) error {
	if minDur > maxDur {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", minDur, maxDur)
	}
	if d < minDur {
		return fmt.Errorf("duration %v is below minimum %v", d, minDur)
	}
	if d > maxDur {
		return fmt.Errorf("duration %v exceeds maximum %v", d, maxDur)
	}
	return nil
}
