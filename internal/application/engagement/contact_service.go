package engagement

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/codatendechat/gateway/internal/domain/engagement"
	"github.com/codatendechat/gateway/internal/domain/shared"
)

// ContactService performs tenant-scoped contact operations.
type ContactService struct {
	contacts engagement.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contacts engagement.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// ListContactsInput narrows a contact listing.
type ListContactsInput struct {
	Search string
	Limit  int
	Offset int
}

// List returns one page of the company's contacts, newest-first.
func (s *ContactService) List(ctx context.Context, companyID uuid.UUID, input ListContactsInput) (*ContactListResult, error) {
	page := shared.Page{Limit: input.Limit, Offset: input.Offset}.Normalize()

	contacts, total, err := s.contacts.FindAllForCompany(ctx, companyID, engagement.ContactFilter{
		Search: input.Search,
		Page:   page,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ContactResponse, len(contacts))
	for i := range contacts {
		items[i] = NewContactResponse(&contacts[i])
	}
	return &ContactListResult{Items: items, Total: total, Limit: page.Limit, Offset: page.Offset}, nil
}

// Get returns a single contact of the company. A malformed id behaves like
// an unknown one.
func (s *ContactService) Get(ctx context.Context, companyID uuid.UUID, id string) (*ContactResponse, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Contact not found")
	}

	contact, err := s.contacts.FindByIDForCompany(ctx, companyID, contactID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Contact not found")
		}
		return nil, err
	}

	resp := NewContactResponse(contact)
	return &resp, nil
}

// CreateContactInput carries the contact creation payload.
type CreateContactInput struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Email  string `json:"email"`
}

// Create stores a new contact for the company.
func (s *ContactService) Create(ctx context.Context, companyID uuid.UUID, input CreateContactInput) (*ContactResponse, error) {
	if input.Name == "" || input.Number == "" {
		return nil, shared.NewDomainError(shared.CodeValidationError, "Name and number are required")
	}

	contact := &engagement.Contact{
		Name:   input.Name,
		Number: input.Number,
		Email:  input.Email,
	}
	contact.CompanyID = companyID

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	resp := NewContactResponse(contact)
	return &resp, nil
}

// UpdateContactInput carries a partial contact update. Name and number only
// apply when non-empty; email applies whenever present and may clear.
type UpdateContactInput struct {
	Name   *string `json:"name"`
	Number *string `json:"number"`
	Email  *string `json:"email"`
}

// Update applies a partial update to one of the company's contacts.
func (s *ContactService) Update(ctx context.Context, companyID uuid.UUID, id string, input UpdateContactInput) (*ContactResponse, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Contact not found")
	}

	update := engagement.ContactUpdate{Email: input.Email}
	if input.Name != nil && *input.Name != "" {
		update.Name = input.Name
	}
	if input.Number != nil && *input.Number != "" {
		update.Number = input.Number
	}

	contact, err := s.contacts.Update(ctx, companyID, contactID, update)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Contact not found")
		}
		return nil, err
	}

	resp := NewContactResponse(contact)
	return &resp, nil
}
