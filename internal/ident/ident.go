// Package ident allocates the next sequential identifier for categories,
// products, and order batches. The allocators are stateless: they compute a
// candidate from the set of ids currently in use and the caller persists it.
//
// Policy decisions (the source formats leave these open): malformed existing
// ids are rejected with ErrMalformedID rather than best-effort parsed, and a
// counter that runs off the end of its space (Z99, product 99, suffix Z)
// returns ErrSpaceExhausted instead of wrapping.
package ident

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMalformedID    = errors.New("ident: malformed identifier")
	ErrSpaceExhausted = errors.New("ident: identifier space exhausted")
)

// categoryCode is the segmented counter behind category ids: one uppercase
// letter and a two-digit number, "A00" through "Z99".
type categoryCode struct {
	letter byte
	num    int
}

func parseCategoryCode(id string) (categoryCode, error) {
	if len(id) != 3 || id[0] < 'A' || id[0] > 'Z' {
		return categoryCode{}, fmt.Errorf("%w: category id %q", ErrMalformedID, id)
	}
	num, err := strconv.Atoi(id[1:])
	if err != nil || id[1] < '0' || id[1] > '9' {
		return categoryCode{}, fmt.Errorf("%w: category id %q", ErrMalformedID, id)
	}
	return categoryCode{letter: id[0], num: num}, nil
}

// next rolls the number over into the letter at 99. Past Z99 there is
// nowhere to go.
func (c categoryCode) next() (categoryCode, error) {
	if c.num < 99 {
		return categoryCode{letter: c.letter, num: c.num + 1}, nil
	}
	if c.letter == 'Z' {
		return categoryCode{}, fmt.Errorf("%w: category ids end at Z99", ErrSpaceExhausted)
	}
	return categoryCode{letter: c.letter + 1, num: 0}, nil
}

func (c categoryCode) String() string {
	return fmt.Sprintf("%c%02d", c.letter, c.num)
}

// NextCategoryID returns the id after the highest existing category id, or
// "A00" when none exist yet.
func NextCategoryID(existing []string) (string, error) {
	if len(existing) == 0 {
		return "A00", nil
	}
	var max categoryCode
	for i, id := range existing {
		c, err := parseCategoryCode(id)
		if err != nil {
			return "", err
		}
		if i == 0 || c.letter > max.letter || (c.letter == max.letter && c.num > max.num) {
			max = c
		}
	}
	next, err := max.next()
	if err != nil {
		return "", err
	}
	return next.String(), nil
}

// NextProductID returns the next two-digit product id within one category:
// max existing + 1, zero-padded, or "01" when the category is empty. Ids are
// capped at 99 to keep the two-digit format an invariant.
func NextProductID(existing []string) (string, error) {
	if len(existing) == 0 {
		return "01", nil
	}
	max := -1
	for _, id := range existing {
		if len(id) != 2 {
			return "", fmt.Errorf("%w: product id %q", ErrMalformedID, id)
		}
		n, err := strconv.Atoi(id)
		if err != nil {
			return "", fmt.Errorf("%w: product id %q", ErrMalformedID, id)
		}
		if n > max {
			max = n
		}
	}
	if max >= 99 {
		return "", fmt.Errorf("%w: product ids end at 99", ErrSpaceExhausted)
	}
	return fmt.Sprintf("%02d", max+1), nil
}

// NextBatchID returns YYYY + zero-padded MM + the next unused suffix letter
// for that year+month. Only ids belonging to the same year+month advance the
// sequence; other months are ignored, so each month starts back at "A".
func NextBatchID(year, month int, existing []string) (string, error) {
	if year < 0 || month < 1 || month > 12 {
		return "", fmt.Errorf("%w: batch period %d-%d", ErrMalformedID, year, month)
	}
	prefix := fmt.Sprintf("%04d%02d", year, month)

	var last byte
	for _, id := range existing {
		if len(id) != 7 {
			return "", fmt.Errorf("%w: batch id %q", ErrMalformedID, id)
		}
		suffix := id[6]
		if suffix < 'A' || suffix > 'Z' {
			return "", fmt.Errorf("%w: batch id %q", ErrMalformedID, id)
		}
		if id[:6] != prefix {
			continue
		}
		if suffix > last {
			last = suffix
		}
	}
	if last == 0 {
		return prefix + "A", nil
	}
	if last == 'Z' {
		return "", fmt.Errorf("%w: batch suffixes for %s end at Z", ErrSpaceExhausted, prefix)
	}
	return prefix + string(last+1), nil
}
