package models

import (
	"encoding/json"
	"time"

	"github.com/codatendechat/gateway/internal/domain/gateway"
	"github.com/google/uuid"
)

// ApiTokenModel is the persistence model for the ApiToken domain entity.
// Permissions are stored as a JSON array in a text column so the same model
// works against postgres in production and sqlite in tests.
type ApiTokenModel struct {
	TenantModel
	Name        string     `gorm:"type:varchar(200);not null"`
	Token       string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Permissions string     `gorm:"type:text;not null;default:'[]'"`
	IsActive    bool       `gorm:"not null;default:true;index"`
	ExpiresAt   *time.Time `gorm:"index"`
	LastUsedAt  *time.Time
}

// TableName returns the table name for GORM
func (ApiTokenModel) TableName() string {
	return "api_tokens"
}

// ToDomain converts the persistence model to a domain ApiToken entity.
// A malformed permissions column yields an empty permission set rather than
// an error; such a token simply passes no permission checks.
func (m *ApiTokenModel) ToDomain() *gateway.ApiToken {
	var permissions []string
	if m.Permissions != "" {
		_ = json.Unmarshal([]byte(m.Permissions), &permissions)
	}
	return &gateway.ApiToken{
		TenantEntity: m.ToDomainTenantEntity(),
		Name:         m.Name,
		Token:        m.Token,
		Permissions:  permissions,
		IsActive:     m.IsActive,
		ExpiresAt:    m.ExpiresAt,
		LastUsedAt:   m.LastUsedAt,
	}
}

// FromDomain populates the persistence model from a domain ApiToken entity.
func (m *ApiTokenModel) FromDomain(t *gateway.ApiToken) {
	m.FromDomainTenantEntity(t.TenantEntity)
	m.Name = t.Name
	m.Token = t.Token
	permissions := t.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	raw, _ := json.Marshal(permissions)
	m.Permissions = string(raw)
	m.IsActive = t.IsActive
	m.ExpiresAt = t.ExpiresAt
	m.LastUsedAt = t.LastUsedAt
}

// ApiLogModel is the persistence model for audit trail entries.
type ApiLogModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	CompanyID      *uuid.UUID `gorm:"type:uuid;index"`
	ApiTokenID     *uuid.UUID `gorm:"type:uuid;index"`
	Endpoint       string     `gorm:"type:varchar(500);not null"`
	Method         string     `gorm:"type:varchar(10);not null"`
	RequestBody    string     `gorm:"type:text"`
	ResponseStatus int        `gorm:"not null"`
	ResponseBody   string     `gorm:"type:text"`
	IPAddress      string     `gorm:"type:varchar(64)"`
	UserAgent      string     `gorm:"type:varchar(500)"`
	DurationMs     int64      `gorm:"not null;default:0"`
	CreatedAt      time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ApiLogModel) TableName() string {
	return "api_logs"
}

// ToDomain converts the persistence model to a domain ApiLogEntry.
func (m *ApiLogModel) ToDomain() *gateway.ApiLogEntry {
	return &gateway.ApiLogEntry{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		ApiTokenID:     m.ApiTokenID,
		Endpoint:       m.Endpoint,
		Method:         m.Method,
		RequestBody:    json.RawMessage(m.RequestBody),
		ResponseStatus: m.ResponseStatus,
		ResponseBody:   json.RawMessage(m.ResponseBody),
		IPAddress:      m.IPAddress,
		UserAgent:      m.UserAgent,
		DurationMs:     m.DurationMs,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain ApiLogEntry.
func (m *ApiLogModel) FromDomain(e *gateway.ApiLogEntry) {
	m.ID = e.ID
	m.CompanyID = e.CompanyID
	m.ApiTokenID = e.ApiTokenID
	m.Endpoint = e.Endpoint
	m.Method = e.Method
	m.RequestBody = string(e.RequestBody)
	m.ResponseStatus = e.ResponseStatus
	m.ResponseBody = string(e.ResponseBody)
	m.IPAddress = e.IPAddress
	m.UserAgent = e.UserAgent
	m.DurationMs = e.DurationMs
	m.CreatedAt = e.CreatedAt
}
