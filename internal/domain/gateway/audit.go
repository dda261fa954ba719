package gateway

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ApiLogEntry is one row of the append-only request audit trail. Company and
// token are nil for requests rejected before authentication resolved them.
// The gateway writes entries exactly once per request and never reads them back.
type ApiLogEntry struct {
	ID             uuid.UUID
	CompanyID      *uuid.UUID
	ApiTokenID     *uuid.UUID
	Endpoint       string
	Method         string
	RequestBody    json.RawMessage
	ResponseStatus int
	ResponseBody   json.RawMessage
	IPAddress      string
	UserAgent      string
	DurationMs     int64
	CreatedAt      time.Time
}
