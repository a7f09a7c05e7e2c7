package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/eeprom/format"
)

const dateSize = 4

var months = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// decodeDate prints day/Mon/year, e.g. "07/Feb/2014". A month outside 1-12
// prints as "BAD".
func decodeDate(data []byte) string {
	if len(data) < dateSize {
		return ""
	}

	month := "BAD"
	if data[1] >= 1 && data[1] <= 12 {
		month = months[data[1]-1]
	}

	return fmt.Sprintf("%02d/%s/%d", data[0], month, engine.Uint16(data[2:4]))
}

func encodeDate(text string, data []byte) error {
	if err := checkSize(format.KindDate, text, data, dateSize); err != nil {
		return err
	}

	parts := strings.Split(text, "/")
	if len(parts) != 3 || !isDigits(parts[0]) || !isDigits(parts[2]) {
		return syntaxError(format.KindDate, text, "syntax error")
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil || day > 31 {
		return syntaxError(format.KindDate, text, "invalid date")
	}
	if day == 0 {
		return syntaxError(format.KindDate, text, "invalid day")
	}

	month := monthIndex(parts[1])
	if month == 0 {
		return syntaxError(format.KindDate, text, "invalid month")
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil || year > 0xFFFF {
		return syntaxError(format.KindDate, text, "year overflow")
	}

	if day > daysInMonth(month, year) {
		return syntaxError(format.KindDate, text, "invalid date")
	}

	data[0] = byte(day)
	data[1] = byte(month)
	engine.PutUint16(data[2:4], uint16(year))

	return nil
}

// monthIndex returns 1-12 for a three letter abbreviation and 0 otherwise.
func monthIndex(name string) int {
	for i, m := range months {
		if m == name {
			return i + 1
		}
	}

	return 0
}

func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}

		return 28
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
