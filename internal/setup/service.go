// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/indiepub/internal/platform/apperr"
	"github.com/taibuivan/indiepub/internal/platform/validate"
	"github.com/taibuivan/indiepub/pkg/slug"
)

const (
	FieldPROName      = "pro_name"
	FieldMemberID     = "member_id"
	FieldWriterIPI    = "writer_ipi"
	FieldPublisherIPI = "publisher_ipi"
	FieldCompanyName  = "company_name"
	FieldEIN          = "ein"
	FieldEntityType   = "entity_type"
	FieldState        = "state"
	FieldStatus       = "status"

	maxFieldLen = 120
)

// PROInput holds the editable fields of a [PROProfile].
type PROInput struct {
	PROName      string `json:"pro_name"`
	MemberID     string `json:"member_id"`
	WriterIPI    string `json:"writer_ipi"`
	PublisherIPI string `json:"publisher_ipi"`
}

// CompanyInput holds the editable fields of a [Company].
type CompanyInput struct {
	CompanyName string `json:"company_name"`
	EIN         string `json:"ein"`
	EntityType  string `json:"entity_type"`
	State       string `json:"state"`
}

// OneSheet is a plain-text summary of the publishing company.
type OneSheet struct {
	Company string `json:"company"`
	Contact string `json:"contact"`
	Text    string `json:"text"`
}

// # Service Layer

// Service manages the publishing setup page.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new setup [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetPRO returns the PRO profile.
func (service *Service) GetPRO(ctx context.Context) (PROProfile, error) {
	return service.repo.GetPRO(ctx)
}

// SavePRO replaces the editable fields of the PRO profile.
func (service *Service) SavePRO(ctx context.Context, input PROInput) (PROProfile, error) {
	input = PROInput{
		PROName:      strings.TrimSpace(input.PROName),
		MemberID:     strings.TrimSpace(input.MemberID),
		WriterIPI:    strings.TrimSpace(input.WriterIPI),
		PublisherIPI: strings.TrimSpace(input.PublisherIPI),
	}

	validator := &validate.Validator{}
	validator.OneOf(FieldPROName, input.PROName, PRONames...).
		MaxLen(FieldMemberID, input.MemberID, maxFieldLen).
		MaxLen(FieldWriterIPI, input.WriterIPI, maxFieldLen).
		MaxLen(FieldPublisherIPI, input.PublisherIPI, maxFieldLen)
	if err := validator.Err(); err != nil {
		return PROProfile{}, err
	}

	profile, err := service.repo.UpdatePRO(ctx, func(profile *PROProfile) {
		profile.PROName = input.PROName
		profile.MemberID = input.MemberID
		profile.WriterIPI = input.WriterIPI
		profile.PublisherIPI = input.PublisherIPI
	})
	if err != nil {
		return PROProfile{}, err
	}

	service.logger.InfoContext(ctx, "pro_profile_saved", slog.String("pro_name", profile.PROName))
	return profile, nil
}

// GetCompany returns the company profile.
func (service *Service) GetCompany(ctx context.Context) (Company, error) {
	return service.repo.GetCompany(ctx)
}

// SaveCompany replaces the editable fields of the company profile.
func (service *Service) SaveCompany(ctx context.Context, input CompanyInput) (Company, error) {
	input = CompanyInput{
		CompanyName: strings.TrimSpace(input.CompanyName),
		EIN:         strings.TrimSpace(input.EIN),
		EntityType:  strings.TrimSpace(input.EntityType),
		State:       strings.TrimSpace(input.State),
	}

	validator := &validate.Validator{}
	validator.MaxLen(FieldCompanyName, input.CompanyName, maxFieldLen).
		MaxLen(FieldEIN, input.EIN, 20).
		OneOf(FieldEntityType, input.EntityType, EntityTypes...).
		MaxLen(FieldState, input.State, maxFieldLen)
	if err := validator.Err(); err != nil {
		return Company{}, err
	}

	company, err := service.repo.UpdateCompany(ctx, func(company *Company) {
		company.CompanyName = input.CompanyName
		company.EIN = input.EIN
		company.EntityType = input.EntityType
		company.State = input.State
	})
	if err != nil {
		return Company{}, err
	}

	service.logger.InfoContext(ctx, "company_profile_saved", slog.String("entity_type", company.EntityType))
	return company, nil
}

// ListRoyaltySources returns every royalty source.
func (service *Service) ListRoyaltySources(ctx context.Context) ([]RoyaltySource, error) {
	return service.repo.ListRoyaltySources(ctx)
}

// SetRoyaltyStatus moves a royalty source to the given status.
func (service *Service) SetRoyaltyStatus(ctx context.Context, id string, status Status) (RoyaltySource, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, string(status), Statuses...)
	if err := validator.Err(); err != nil {
		return RoyaltySource{}, err
	}

	source, ok, err := service.repo.SetRoyaltyStatus(ctx, id, status)
	return service.royaltyResult(source, ok, err)
}

// ToggleRoyaltySource flips a royalty source between Complete and Not Started.
func (service *Service) ToggleRoyaltySource(ctx context.Context, id string) (RoyaltySource, error) {
	source, ok, err := service.repo.ToggleRoyaltySource(ctx, id)
	return service.royaltyResult(source, ok, err)
}

func (service *Service) royaltyResult(source RoyaltySource, ok bool, err error) (RoyaltySource, error) {
	if err != nil {
		return RoyaltySource{}, err
	}
	if !ok {
		return RoyaltySource{}, apperr.NotFound("Royalty source")
	}
	return source, nil
}

// # One-Sheet

const oneSheetTemplate = `PUBLISHING COMPANY ONE-SHEET
----------------------------
Company: %s
Entity: %s
EIN: %s

Overview:
Professional music publishing entity established to manage rights, collect mechanical and performance royalties, and exploit copyright assets globally.

Contact: %s`

// GenerateOneSheet renders the company one-sheet from the stored profile.
func (service *Service) GenerateOneSheet(ctx context.Context) (OneSheet, error) {
	company, err := service.repo.GetCompany(ctx)
	if err != nil {
		return OneSheet{}, err
	}

	name := company.CompanyName
	if strings.TrimSpace(name) == "" {
		name = "N/A"
	}

	contact := ContactAddress(company.CompanyName)
	return OneSheet{
		Company: name,
		Contact: contact,
		Text:    fmt.Sprintf(oneSheetTemplate, name, company.EntityType, company.EIN, contact),
	}, nil
}

// ContactAddress derives the legal contact mailbox from a company name.
func ContactAddress(companyName string) string {
	local := slug.Compact(companyName)
	if local == "" {
		local = "artist"
	}
	return "legal@" + local + ".com"
}
