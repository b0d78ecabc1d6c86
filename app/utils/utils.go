package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"mecda-academy/app/models"

	"github.com/shopspring/decimal"
	"github.com/ttacon/libphonenumber"
)

const timeLayout = "15:04"

// CalculateHours derives a session's duration in hours from its
// "HH:MM" start and end times, floored at zero and rounded to two
// decimal places. The duration is never entered directly.
func CalculateHours(startTime, endTime string) (decimal.Decimal, error) {
	start, err := time.Parse(timeLayout, startTime)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	end, err := time.Parse(timeLayout, endTime)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid end time %q: %w", endTime, err)
	}

	hours := end.Sub(start).Hours()
	if hours < 0 {
		hours = 0
	}
	return decimal.NewFromFloat(hours).Round(2), nil
}

// PeriodFromDate derives the denormalized month name and year from a
// YYYY-MM-DD date.
func PeriodFromDate(date string) (month, year string, err error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.Month().String(), fmt.Sprintf("%d", d.Year()), nil
}

// FormatCurrency renders an amount as rupees with en-IN digit
// grouping, e.g. "Rs. 1,23,456.50".
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.Round(2).StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, frac := parts[0], parts[1]

	grouped := groupIndian(intPart)
	if negative {
		grouped = "-" + grouped
	}
	return "Rs. " + grouped + "." + frac
}

// groupIndian applies Indian-style grouping: the last three digits,
// then pairs. "1234567" -> "12,34,567".
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}

// normalizePhone reduces a phone number to the digit string wa.me
// expects. Numbers that parse cleanly are normalized to E.164 first
// (default region LK); anything else falls back to stripping
// non-digits.
func normalizePhone(phone string) string {
	if num, err := libphonenumber.Parse(phone, "LK"); err == nil {
		return strings.TrimPrefix(libphonenumber.Format(num, libphonenumber.E164), "+")
	}
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink builds the wa.me deep link that opens a chat with the
// given number and a pre-filled message.
func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", normalizePhone(phone), url.QueryEscape(message))
}

// StudentPaymentMessage formats the fee confirmation sent to a
// student's guardian when a brand-new payment is committed.
func StudentPaymentMessage(student *models.Student, p *models.StudentPayment) string {
	return fmt.Sprintf(`Dear Parent,
Payment received successfully.
Student Name: %s
Grade: %s
Month: %s
Amount Paid: Rs %s
Thank you.`, student.Name, p.Grade, p.Month, p.PaidAmount.Round(2).String())
}
