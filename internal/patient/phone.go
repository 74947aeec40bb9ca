package patient

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReservedPhoneSegment marks a number as fictitious (555-01xx style).
const ReservedPhoneSegment = 5550

// PhoneSpace is the number of distinct numbers GeneratePhone can return.
const PhoneSpace = 900 * 900

// groupPrinter renders integers with English thousands grouping; the comma
// is swapped for '-' by FormatPhone.
var groupPrinter = message.NewPrinter(language.English)

// GeneratePhone returns a 10-digit number shaped {100-999}5550{100-999}.
func GeneratePhone(rng *rand.Rand) int64 {
	area := int64(100 + rng.IntN(900))
	line := int64(100 + rng.IntN(900))
	return area*10_000_000 + ReservedPhoneSegment*1_000 + line
}

// FormatPhone drops the last digit, groups the rest in threes with '-', then
// appends the dropped digit: 1235550678 -> 123-555-0678.
func FormatPhone(n int64) string {
	grouped := groupPrinter.Sprintf("%d", n/10)
	grouped = strings.ReplaceAll(grouped, ",", "-")
	return grouped + strconv.FormatInt(n%10, 10)
}
