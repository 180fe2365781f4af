package csvdb

import (
	"strings"
	"testing"

	"hiltim-backend/internal/models"
)

func TestEncodeEmpty(t *testing.T) {
	got := Encode(nil)
	want := strings.Join(Headers, ",")
	if got != want {
		t.Fatalf("expected header-only output, got %q", got)
	}
}

func TestDecodeEmptyAndHeaderOnly(t *testing.T) {
	if bookings, _ := Decode(""); len(bookings) != 0 {
		t.Fatalf("expected no bookings from empty input, got %d", len(bookings))
	}
	if bookings, _ := Decode(strings.Join(Headers, ",") + "\n"); len(bookings) != 0 {
		t.Fatalf("expected no bookings from header-only input, got %d", len(bookings))
	}
}

func TestRoundTrip(t *testing.T) {
	original := models.SampleBookings()
	decoded, warnings := Decode(Encode(original))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(decoded) != len(original) {
		t.Fatalf("expected %d bookings, got %d", len(original), len(decoded))
	}
	for i := range original {
		assertBookingEqual(t, original[i], decoded[i])
	}
}

func TestRoundTripQuotingEdgeCases(t *testing.T) {
	bk := models.Booking{
		ID:               "BK001",
		UserID:           "user123",
		RoomType:         "Standard Room",
		CheckIn:          "2025-10-15",
		CheckOut:         "2025-10-20",
		Adults:           2,
		Children:         1,
		Guests:           3,
		Nights:           5,
		TotalPrice:       750.5,
		Status:           models.StatusConfirmed,
		DateCreated:      "2025-09-10",
		DateModified:     "2025-09-10",
		FirstName:        `Anna "Annie"`,
		LastName:         "O'Hara, Jr.",
		Email:            "anna@example.com",
		SpecialRequests:  `Crib, please. Room with "quiet" view`,
		ActivityPackages: []string{"Ocean Explorer Package", "Cultural Immersion Package"},
		AmenityPackages:  []string{},
	}

	decoded, warnings := Decode(Encode([]models.Booking{bk}))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(decoded))
	}
	assertBookingEqual(t, bk, decoded[0])
}

func TestEscapeField(t *testing.T) {
	if got := EscapeField("plain"); got != "plain" {
		t.Fatalf("plain value should pass through, got %q", got)
	}
	if got := EscapeField("a,b"); got != `"a,b"` {
		t.Fatalf("comma value not quoted: %q", got)
	}
	if got := EscapeField(`say "hi"`); got != `"say ""hi"""` {
		t.Fatalf("quote value not escaped: %q", got)
	}
	if got := EscapeField("line1\nline2"); got != "\"line1\nline2\"" {
		t.Fatalf("newline value not quoted: %q", got)
	}
}

func TestParseLine(t *testing.T) {
	fields := ParseLine(`a,"b,c","say ""hi""",,d`)
	want := []string{"a", "b,c", `say "hi"`, "", "d"}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d: %v", len(want), len(fields), fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("field %d: expected %q, got %q", i, want[i], fields[i])
		}
	}
}

func TestDecodeSkipsMalformedRows(t *testing.T) {
	text := strings.Join(Headers, ",") + "\n" +
		"BK001,user123,Standard Room,2025-10-15,2025-10-20,2,0,2,5,750,confirmed,2025-09-10,2025-09-10,John,Doe,j@d.com,,,,\n" +
		"BK002,too,few,fields\n"

	bookings, warnings := Decode(text)
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "row 3") {
		t.Fatalf("warning should reference row 3: %q", warnings[0])
	}
}

func TestDecodeCoercesNumericAndListColumns(t *testing.T) {
	row := []string{
		"BK009", "user1", "Standard Room", "2025-10-15", "2025-10-20",
		"2", "", "2", "5", "750.50", "pending", "2025-09-10", "2025-09-10",
		"John", "Doe", "j@d.com", "", "", "A;;B;", "",
	}
	text := strings.Join(Headers, ",") + "\n" + strings.Join(row, ",")

	bookings, warnings := Decode(text)
	if len(warnings) != 0 || len(bookings) != 1 {
		t.Fatalf("decode failed: %d bookings, warnings %v", len(bookings), warnings)
	}
	bk := bookings[0]
	if bk.Children != 0 {
		t.Fatalf("empty numeric column should coerce to 0, got %d", bk.Children)
	}
	if bk.TotalPrice != 750.5 {
		t.Fatalf("expected totalPrice 750.5, got %v", bk.TotalPrice)
	}
	if len(bk.ActivityPackages) != 2 || bk.ActivityPackages[0] != "A" || bk.ActivityPackages[1] != "B" {
		t.Fatalf("empty list tokens should be dropped, got %v", bk.ActivityPackages)
	}
	if len(bk.AmenityPackages) != 0 {
		t.Fatalf("empty list column should decode to empty list, got %v", bk.AmenityPackages)
	}
	if bk.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %q", bk.Status)
	}
}

func assertBookingEqual(t *testing.T, want, got models.Booking) {
	t.Helper()
	if want.ID != got.ID || want.UserID != got.UserID || want.RoomType != got.RoomType {
		t.Fatalf("identity fields mismatch: want %+v, got %+v", want, got)
	}
	if want.CheckIn != got.CheckIn || want.CheckOut != got.CheckOut {
		t.Fatalf("date fields mismatch: want %+v, got %+v", want, got)
	}
	if want.Adults != got.Adults || want.Children != got.Children || want.Guests != got.Guests || want.Nights != got.Nights {
		t.Fatalf("count fields mismatch: want %+v, got %+v", want, got)
	}
	if want.TotalPrice != got.TotalPrice || want.Status != got.Status {
		t.Fatalf("price/status mismatch: want %+v, got %+v", want, got)
	}
	if want.FirstName != got.FirstName || want.LastName != got.LastName || want.Email != got.Email || want.Phone != got.Phone {
		t.Fatalf("guest fields mismatch: want %+v, got %+v", want, got)
	}
	if want.SpecialRequests != got.SpecialRequests {
		t.Fatalf("special requests mismatch: want %q, got %q", want.SpecialRequests, got.SpecialRequests)
	}
	if strings.Join(want.ActivityPackages, ";") != strings.Join(got.ActivityPackages, ";") {
		t.Fatalf("activity packages mismatch: want %v, got %v", want.ActivityPackages, got.ActivityPackages)
	}
	if strings.Join(want.AmenityPackages, ";") != strings.Join(got.AmenityPackages, ";") {
		t.Fatalf("amenity packages mismatch: want %v, got %v", want.AmenityPackages, got.AmenityPackages)
	}
}
