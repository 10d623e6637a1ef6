package books

import (
	pkgerrors "textkit/pkg/errors"
	"textkit/pkg/textutil"
)

// hyphenIndices are applied in sequence, so each index accounts for the
// hyphens already inserted before it (978-0-099-52912-6).
var hyphenIndices = [...]int{3, 5, 9, 15}

// FormatISBN renders a 13-digit ISBN in its hyphenated display form.
func FormatISBN(isbn string) (string, error) {
	out := isbn
	for _, idx := range hyphenIndices {
		var err error
		out, err = textutil.InsertHyphen(out, idx)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// ValidISBN checks the ISBN-13 check digit: the first twelve digits are
// weighted 1 and 3 alternately and the thirteenth must equal
// 10 - (sum mod 10). The 10 is not reduced modulo 10, so an ISBN whose
// checksum works out to 10 never validates.
func ValidISBN(isbn string) (bool, error) {
	if len(isbn) != 13 {
		return false, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "ISBN %q must be a 13 digit number", isbn)
	}
	digits := make([]int, 13)
	for i, r := range isbn {
		if r < '0' || r > '9' {
			return false, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "ISBN %q must be a 13 digit number", isbn)
		}
		digits[i] = int(r - '0')
	}

	sum := 0
	for i := 0; i < 12; i++ {
		if i%2 == 1 {
			sum += digits[i] * 3
		} else {
			sum += digits[i]
		}
	}
	check := 10 - (sum % 10)
	return digits[12] == check, nil
}
