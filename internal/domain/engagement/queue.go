package engagement

import "github.com/codatendechat/gateway/internal/domain/shared"

// Queue is a routing bucket for tickets.
type Queue struct {
	shared.TenantEntity
	Name              string
	Color             string
	GreetingMessage   string
	OutOfHoursMessage string
	OrderQueue        int
}

// Tag labels contacts and tickets; kanban tags double as board columns.
type Tag struct {
	shared.TenantEntity
	Name   string
	Color  string
	Kanban int
}
