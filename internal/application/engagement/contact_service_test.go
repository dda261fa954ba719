package engagement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codatendechat/gateway/internal/domain/shared"
)

func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestContactService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("requires name and number", func(t *testing.T) {
		svc := NewContactService(newMemContactRepo())

		_, err := svc.Create(ctx, companyID, CreateContactInput{Name: "Alice"})
		assertDomainCode(t, err, shared.CodeValidationError)

		_, err = svc.Create(ctx, companyID, CreateContactInput{Number: "5511999990001"})
		assertDomainCode(t, err, shared.CodeValidationError)
	})

	t.Run("create then get round trip", func(t *testing.T) {
		svc := NewContactService(newMemContactRepo())

		created, err := svc.Create(ctx, companyID, CreateContactInput{
			Name:   "Alice Johnson",
			Number: "5511999990001",
			Email:  "alice@example.com",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, companyID, created.CompanyID)

		got, err := svc.Get(ctx, companyID, created.ID.String())
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Alice Johnson", got.Name)
		assert.Equal(t, "alice@example.com", got.Email)
	})
}

func TestContactService_Get(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("malformed id behaves like unknown", func(t *testing.T) {
		svc := NewContactService(newMemContactRepo())

		_, err := svc.Get(ctx, companyID, "not-a-uuid")

		assertDomainCode(t, err, shared.CodeNotFound)
	})

	t.Run("contact of another company stays hidden", func(t *testing.T) {
		repo := newMemContactRepo()
		foreign := repo.add(uuid.New(), "Dave Intruder", "5511999990004")
		svc := NewContactService(repo)

		_, err := svc.Get(ctx, companyID, foreign.ID.String())

		assertDomainCode(t, err, shared.CodeNotFound)
	})
}

func TestContactService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("empty name and number are ignored, email may clear", func(t *testing.T) {
		repo := newMemContactRepo()
		contact := repo.add(companyID, "Alice Johnson", "5511999990001")
		contact.Email = "alice@example.com"
		svc := NewContactService(repo)

		empty := ""
		updated, err := svc.Update(ctx, companyID, contact.ID.String(), UpdateContactInput{
			Name:   &empty,
			Number: &empty,
			Email:  &empty,
		})

		require.NoError(t, err)
		assert.Equal(t, "Alice Johnson", updated.Name)
		assert.Equal(t, "5511999990001", updated.Number)
		assert.Equal(t, "", updated.Email)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		svc := NewContactService(newMemContactRepo())
		name := "Anyone"

		_, err := svc.Update(ctx, companyID, uuid.New().String(), UpdateContactInput{Name: &name})

		assertDomainCode(t, err, shared.CodeNotFound)
	})
}

func TestContactService_List(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	repo := newMemContactRepo()
	repo.add(companyID, "Alice Johnson", "5511999990001")
	repo.add(companyID, "Bob Smith", "5511999990002")
	repo.add(uuid.New(), "Dave Intruder", "5511999990004")
	svc := NewContactService(repo)

	t.Run("scopes to the company and echoes normalized pagination", func(t *testing.T) {
		result, err := svc.List(ctx, companyID, ListContactsInput{Limit: 0, Offset: -3})

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Total)
		assert.Len(t, result.Items, 2)
		assert.Equal(t, shared.DefaultPageLimit, result.Limit)
		assert.Equal(t, 0, result.Offset)
	})

	t.Run("caps the limit", func(t *testing.T) {
		result, err := svc.List(ctx, companyID, ListContactsInput{Limit: 100000})

		require.NoError(t, err)
		assert.Equal(t, shared.MaxPageLimit, result.Limit)
	})

	t.Run("search narrows the page and the total", func(t *testing.T) {
		result, err := svc.List(ctx, companyID, ListContactsInput{Search: "smith"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Bob Smith", result.Items[0].Name)
	})
}
