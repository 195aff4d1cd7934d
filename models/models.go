/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package models

import "github.com/go-openapi/strfmt"

// Audit carries the bookkeeping fields the operation executor stamps on
// every record. Embed it in any document struct.
type Audit struct {

	// Timestamp when the record was created.
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"createdAt,omitempty"`

	// Timestamp when the record was last updated.
	// Format: date-time
	UpdatedAt strfmt.DateTime `json:"updatedAt,omitempty"`

	// ID of the user who created the record.
	CreatedBy string `json:"created_by,omitempty"`

	// ID of the user who last updated the record.
	UpdatedBy string `json:"updated_by,omitempty"`
}

// Beneficiary is an aid recipient registered through intake.
type Beneficiary struct {

	// Unique identifier for the beneficiary.
	ID string `json:"id,omitempty"`

	// Full name.
	// Required: true
	Name string `json:"name"`

	// National identity number.
	TCNo string `json:"tc_no,omitempty"`

	// Contact phone number.
	Phone string `json:"phone,omitempty"`

	// Street address.
	Address string `json:"address,omitempty"`

	// City of residence.
	City string `json:"city,omitempty"`

	// District within the city.
	District string `json:"district,omitempty"`

	// Neighborhood within the district.
	Neighborhood string `json:"neighborhood,omitempty"`

	// Number of people in the household.
	FamilySize int `json:"family_size,omitempty"`

	// Intake status, AKTIF or PASIF.
	Status string `json:"status,omitempty"`

	Audit
}

// Donation is a recorded contribution from a donor.
type Donation struct {
	ID        string  `json:"id,omitempty"`
	DonorName string  `json:"donor_name,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Status    string  `json:"status,omitempty"`

	Audit
}

// AidApplication tracks a beneficiary's request through its review stages.
type AidApplication struct {
	ID            string `json:"id,omitempty"`
	BeneficiaryID string `json:"beneficiary_id,omitempty"`
	Stage         string `json:"stage,omitempty"`
	AidType       string `json:"aid_type,omitempty"`
	Description   string `json:"description,omitempty"`

	Audit
}

// AidRecord is a delivered aid entry in a beneficiary's history.
type AidRecord struct {
	ID            string  `json:"id,omitempty"`
	BeneficiaryID string  `json:"beneficiary_id,omitempty"`
	RecordType    string  `json:"record_type,omitempty"`
	Amount        float64 `json:"amount,omitempty"`

	Audit
}

// Scholarship is an education support grant.
type Scholarship struct {
	ID            string  `json:"id,omitempty"`
	StudentName   string  `json:"student_name,omitempty"`
	School        string  `json:"school,omitempty"`
	MonthlyAmount float64 `json:"monthly_amount,omitempty"`
	Status        string  `json:"status,omitempty"`

	Audit
}

// Meeting is a scheduled gathering with an organizer and attendees.
type Meeting struct {
	ID        string          `json:"id,omitempty"`
	Title     string          `json:"title,omitempty"`
	Organizer string          `json:"organizer,omitempty"`
	StartsAt  strfmt.DateTime `json:"starts_at,omitempty"`
	Location  string          `json:"location,omitempty"`

	Audit
}

// Message is an internal message between users.
type Message struct {
	ID        string `json:"id,omitempty"`
	Sender    string `json:"sender,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"body,omitempty"`
	Read      bool   `json:"read,omitempty"`

	Audit
}

// User is an application account.
type User struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	IsActive bool   `json:"isActive,omitempty"`

	Audit
}

// AuditLog is one security/audit trail entry.
type AuditLog struct {
	ID       string `json:"id,omitempty"`
	Actor    string `json:"actor,omitempty"`
	Action   string `json:"action,omitempty"`
	Resource string `json:"resource,omitempty"`
	Detail   string `json:"detail,omitempty"`

	Audit
}
