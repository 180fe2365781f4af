// Package csvdb implements the CSV encoding used by the booking database
// blob: a fixed header row, double-quote escaping for values containing
// commas, quotes or newlines, and semicolon-joined sub-lists for the
// multi-valued package columns.
package csvdb

import (
	"fmt"
	"strconv"
	"strings"

	"hiltim-backend/internal/models"
)

// Headers is the column order of the booking database blob. Decode aligns
// row fields to these positions.
var Headers = []string{
	"id", "userId", "roomType", "checkIn", "checkOut", "adults", "children",
	"guests", "nights", "totalPrice", "status", "dateCreated", "dateModified",
	"firstName", "lastName", "email", "phone", "specialRequests",
	"activityPackages", "amenityPackages",
}

// Encode serializes bookings to CSV text. A nil or empty slice produces
// header-only output.
func Encode(bookings []models.Booking) string {
	var b strings.Builder
	b.WriteString(strings.Join(Headers, ","))
	for _, bk := range bookings {
		b.WriteByte('\n')
		b.WriteString(encodeRow(bk))
	}
	return b.String()
}

func encodeRow(bk models.Booking) string {
	fields := []string{
		bk.ID,
		bk.UserID,
		bk.RoomType,
		bk.CheckIn,
		bk.CheckOut,
		strconv.Itoa(bk.Adults),
		strconv.Itoa(bk.Children),
		strconv.Itoa(bk.Guests),
		strconv.Itoa(bk.Nights),
		formatPrice(bk.TotalPrice),
		string(bk.Status),
		bk.DateCreated,
		bk.DateModified,
		bk.FirstName,
		bk.LastName,
		bk.Email,
		bk.Phone,
		bk.SpecialRequests,
		strings.Join(bk.ActivityPackages, ";"),
		strings.Join(bk.AmenityPackages, ";"),
	}
	for i, f := range fields {
		fields[i] = EscapeField(f)
	}
	return strings.Join(fields, ",")
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// Decode parses CSV text back into bookings. Blank lines are dropped and
// the first non-blank line is treated as the header. Rows whose field
// count disagrees with the header are skipped and reported as warnings
// rather than positionally misaligned. Empty or header-only input yields
// an empty list.
func Decode(text string) ([]models.Booking, []string) {
	var bookings []models.Booking
	var warnings []string

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(strings.TrimSuffix(line, "\r")) != "" {
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
	}
	if len(lines) <= 1 {
		return bookings, warnings
	}

	header := ParseLine(lines[0])
	for i, line := range lines[1:] {
		fields := ParseLine(line)
		if len(fields) != len(header) {
			// Row numbering matches a spreadsheet view: header is row 1.
			warnings = append(warnings, fmt.Sprintf("row %d: expected %d fields, got %d", i+2, len(header), len(fields)))
			continue
		}
		bookings = append(bookings, decodeRow(header, fields))
	}
	return bookings, warnings
}

func decodeRow(header, fields []string) models.Booking {
	var bk models.Booking
	for i, name := range header {
		value := fields[i]
		switch name {
		case "id":
			bk.ID = value
		case "userId":
			bk.UserID = value
		case "roomType":
			bk.RoomType = value
		case "checkIn":
			bk.CheckIn = value
		case "checkOut":
			bk.CheckOut = value
		case "adults":
			bk.Adults = parseInt(value)
		case "children":
			bk.Children = parseInt(value)
		case "guests":
			bk.Guests = parseInt(value)
		case "nights":
			bk.Nights = parseInt(value)
		case "totalPrice":
			bk.TotalPrice = parseFloat(value)
		case "status":
			bk.Status = models.BookingStatus(value)
		case "dateCreated":
			bk.DateCreated = value
		case "dateModified":
			bk.DateModified = value
		case "firstName":
			bk.FirstName = value
		case "lastName":
			bk.LastName = value
		case "email":
			bk.Email = value
		case "phone":
			bk.Phone = value
		case "specialRequests":
			bk.SpecialRequests = value
		case "activityPackages":
			bk.ActivityPackages = splitList(value)
		case "amenityPackages":
			bk.AmenityPackages = splitList(value)
		}
	}
	return bk
}

// parseInt coerces a numeric column; empty or malformed values become 0,
// mirroring how the blob treats missing counts.
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// splitList parses a semicolon-joined column, dropping empty tokens.
func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ";") {
		if strings.TrimSpace(item) != "" {
			items = append(items, item)
		}
	}
	return items
}

// EscapeField quotes a single CSV value when needed: internal quotes are
// doubled and the value is wrapped in quotes if it contains a comma,
// quote or newline.
func EscapeField(value string) string {
	escaped := strings.ReplaceAll(value, `"`, `""`)
	if strings.ContainsAny(escaped, ",\"\n") {
		return `"` + escaped + `"`
	}
	return escaped
}

// ParseLine splits a single CSV line on commas outside quotes. A doubled
// quote inside a quoted field is a literal quote.
func ParseLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	result = append(result, current.String())
	return result
}
