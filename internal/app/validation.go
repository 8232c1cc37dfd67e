package app

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"hotel_booking/internal/domain"
)

// ParseLoyaltyStatus normalizes the case of raw ("gOLD" -> "Gold") and checks
// it against the statuses the hotel issues.
func ParseLoyaltyStatus(raw string) (domain.LoyaltyStatus, error) {
	s := domain.LoyaltyStatus(capitalize(raw))
	if !s.Valid() {
		return "", domain.InputError(domain.ErrInvalidLoyaltyStatus)
	}
	return s, nil
}

// ValidateDateRange parses both dates and requires check-out to fall strictly
// after check-in. Unparseable dates are not input errors.
func ValidateDateRange(checkIn, checkOut string) (domain.StayDates, error) {
	in, err := time.Parse(domain.DateLayout, checkIn)
	if err != nil {
		return domain.StayDates{}, errors.Wrap(err, "parse check-in date")
	}
	out, err := time.Parse(domain.DateLayout, checkOut)
	if err != nil {
		return domain.StayDates{}, errors.Wrap(err, "parse check-out date")
	}
	if !out.After(in) {
		return domain.StayDates{}, domain.InputError(domain.ErrInvalidDateOrder)
	}
	return domain.StayDates{CheckIn: in, CheckOut: out}, nil
}

// ParseRating reads a whole-number rating and range-checks it.
func ParseRating(raw string) (int, error) {
	r, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "parse rating %q", raw)
	}
	if err := ValidateRating(r); err != nil {
		return 0, err
	}
	return r, nil
}

func ValidateRating(r int) error {
	if r < 1 || r > 5 {
		return domain.InputError(domain.ErrRatingOutOfRange)
	}
	return nil
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
