package services

import (
	"testing"

	"hms/dto"
	"hms/models"
)

func TestResolveBookingCustomerNewCustomer(t *testing.T) {
	req := &dto.BookingRequest{
		CustomerName:   "Nguyễn Văn An",
		CustomerPhone:  "0912345678",
		CustomerEmail:  "an.nguyen@example.com",
		CustomerIdCard: "079203001234",
	}

	customer := ResolveBookingCustomer(nil, req)
	if customer.ID != 0 {
		t.Fatalf("new customer should have no ID yet, got %d", customer.ID)
	}
	if customer.Name != req.CustomerName || customer.Phone != req.CustomerPhone ||
		customer.Email != req.CustomerEmail || customer.IdCard != req.CustomerIdCard {
		t.Fatalf("new customer should copy form fields, got %+v", customer)
	}
}

func TestResolveBookingCustomerExistingKeptAsIs(t *testing.T) {
	existing := &models.Customer{
		ID:     42,
		Name:   "Nguyễn Văn An",
		Phone:  "0912345678",
		Email:  "an.nguyen@example.com",
		IdCard: "079203001234",
	}
	// Form nhập tên và số điện thoại khác với hồ sơ cũ
	req := &dto.BookingRequest{
		CustomerName:   "Nguyen Van An (khác)",
		CustomerPhone:  "0999999999",
		CustomerEmail:  "khac@example.com",
		CustomerIdCard: "079203001234",
	}

	customer := ResolveBookingCustomer(existing, req)
	if customer.ID != 42 {
		t.Fatalf("expected existing customer 42, got %d", customer.ID)
	}
	if customer.Name != existing.Name || customer.Phone != existing.Phone || customer.Email != existing.Email {
		t.Fatalf("form fields must not overwrite existing record, got %+v", customer)
	}
}
