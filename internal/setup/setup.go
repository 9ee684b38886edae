// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setup

// PRO names accepted on a [PROProfile]. An empty name means not yet affiliated.
var PRONames = []string{"", "ASCAP", "BMI", "SESAC"}

// Entity types accepted on a [Company]. An empty type means not yet chosen.
var EntityTypes = []string{"", "Sole Proprietorship", "LLC", "Corporation"}

// PROProfile is the performing rights organization membership of the user.
type PROProfile struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	PROName      string `json:"pro_name"`
	MemberID     string `json:"member_id"`
	WriterIPI    string `json:"writer_ipi"`
	PublisherIPI string `json:"publisher_ipi"`
}

// Clone implements memstore.Cloner.
func (profile PROProfile) Clone() PROProfile { return profile }

// Company is the publishing entity of the user.
type Company struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	CompanyName string `json:"company_name"`
	EIN         string `json:"ein"`
	EntityType  string `json:"entity_type"`
	State       string `json:"state"`
}

// Clone implements memstore.Cloner.
func (company Company) Clone() Company { return company }

// Status is the registration progress with a royalty source.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusComplete   Status = "Complete"
)

// Statuses lists every accepted [Status].
var Statuses = []string{string(StatusNotStarted), string(StatusInProgress), string(StatusComplete)}

// Toggled flips Complete to Not Started and anything else to Complete.
func (status Status) Toggled() Status {
	if status == StatusComplete {
		return StatusNotStarted
	}
	return StatusComplete
}

// RoyaltySource is an organization the user must register with to collect royalties.
type RoyaltySource struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status Status `json:"status"`
	Notes  string `json:"notes"`
}

// RecordID implements memstore.Record.
func (source RoyaltySource) RecordID() string { return source.ID }

// Clone implements memstore.Record.
func (source RoyaltySource) Clone() RoyaltySource { return source }
