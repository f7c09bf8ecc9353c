package validator

import (
	"testing"
	"time"

	"hms/dto"
	"hms/errors"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2026 || parsed.Month() != time.September || parsed.Day() != 1 {
		t.Fatalf("unexpected date: %v", parsed)
	}

	for _, input := range []string{"", "01-09-2026", "2026/09/01", "2026-13-01", "hôm nay"} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("expected error for input %q", input)
		} else if !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("input %q: expected INVALID_FORMAT, got %v", input, err)
		}
	}
}

func TestValidateDateRange(t *testing.T) {
	day := func(s string) time.Time {
		parsed, err := time.Parse(DateLayout, s)
		if err != nil {
			t.Fatalf("bad test date %q", s)
		}
		return parsed
	}

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		wantCode errors.ErrorCode
	}{
		{name: "valid window", checkIn: "2026-09-01", checkOut: "2026-09-04"},
		{name: "single night", checkIn: "2026-09-01", checkOut: "2026-09-02"},
		{name: "same day", checkIn: "2026-09-01", checkOut: "2026-09-01", wantCode: errors.ErrCodeInvalidDateRange},
		{name: "reversed", checkIn: "2026-09-04", checkOut: "2026-09-01", wantCode: errors.ErrCodeInvalidDateRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDateRange(day(tc.checkIn), day(tc.checkOut))
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.HasCode(err, tc.wantCode) {
				t.Fatalf("expected %s, got %v", tc.wantCode, err)
			}
		})
	}

	if err := ValidateDateRange(time.Time{}, day("2026-09-01")); !errors.HasCode(err, errors.ErrCodeRequiredField) {
		t.Fatalf("expected REQUIRED_FIELD for zero check-in, got %v", err)
	}
}

func validBookingRequest() dto.BookingRequest {
	return dto.BookingRequest{
		RoomID:         11,
		CheckInDate:    "2026-09-01",
		CheckOutDate:   "2026-09-04",
		CustomerName:   "Nguyễn Văn An",
		CustomerPhone:  "0912345678",
		CustomerEmail:  "an.nguyen@example.com",
		CustomerIdCard: "079203001234",
	}
}

func TestValidateBookingRequest(t *testing.T) {
	if err := ValidateBookingRequest(func() *dto.BookingRequest { r := validBookingRequest(); return &r }()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name     string
		mutate   func(r *dto.BookingRequest)
		wantCode errors.ErrorCode
	}{
		{name: "missing room", mutate: func(r *dto.BookingRequest) { r.RoomID = 0 }, wantCode: errors.ErrCodeRequiredField},
		{name: "missing name", mutate: func(r *dto.BookingRequest) { r.CustomerName = "" }, wantCode: errors.ErrCodeRequiredField},
		{name: "missing phone", mutate: func(r *dto.BookingRequest) { r.CustomerPhone = "" }, wantCode: errors.ErrCodeRequiredField},
		{name: "bad phone", mutate: func(r *dto.BookingRequest) { r.CustomerPhone = "abc" }, wantCode: errors.ErrCodeInvalidPhone},
		{name: "missing email", mutate: func(r *dto.BookingRequest) { r.CustomerEmail = "" }, wantCode: errors.ErrCodeRequiredField},
		{name: "bad email", mutate: func(r *dto.BookingRequest) { r.CustomerEmail = "not-an-email" }, wantCode: errors.ErrCodeInvalidEmail},
		{name: "missing id card", mutate: func(r *dto.BookingRequest) { r.CustomerIdCard = "" }, wantCode: errors.ErrCodeRequiredField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBookingRequest()
			tc.mutate(&req)
			err := ValidateBookingRequest(&req)
			if !errors.HasCode(err, tc.wantCode) {
				t.Fatalf("expected %s, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestValidateCustomer(t *testing.T) {
	if err := ValidateCustomer("Trần Thị Bình", "0987654321", "binh@example.com", "079203009999"); err != nil {
		t.Fatalf("valid customer rejected: %v", err)
	}

	// Email bỏ trống được phép, email sai định dạng thì không
	if err := ValidateCustomer("Trần Thị Bình", "0987654321", "", "079203009999"); err != nil {
		t.Fatalf("empty email should be allowed: %v", err)
	}
	if err := ValidateCustomer("Trần Thị Bình", "0987654321", "xx", "079203009999"); !errors.HasCode(err, errors.ErrCodeInvalidEmail) {
		t.Fatalf("expected INVALID_EMAIL, got %v", err)
	}

	if err := ValidateCustomer("", "0987654321", "", "079203009999"); !errors.HasCode(err, errors.ErrCodeRequiredField) {
		t.Fatalf("expected REQUIRED_FIELD for empty name, got %v", err)
	}
	if err := ValidateCustomer("Trần Thị Bình", "0987654321", "", ""); !errors.HasCode(err, errors.ErrCodeRequiredField) {
		t.Fatalf("expected REQUIRED_FIELD for empty id card, got %v", err)
	}
}
