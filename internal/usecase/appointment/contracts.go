package appointment

import (
	"time"

	"github.com/barbearia-app/booking-api/internal/audit"
	"github.com/barbearia-app/booking-api/internal/timezone"
)

// TimeProvider supplies "now" so eligibility and lifecycle checks stay
// deterministic under test. The returned instant carries the shop's
// location; all date parsing happens in it.
type TimeProvider interface {
	Now() time.Time
}

type shopClock struct {
	tz string
}

func (c shopClock) Now() time.Time {
	return timezone.NowIn(c.tz)
}

// Auditor records business events off the request path.
type Auditor interface {
	Dispatch(ev audit.Event)
}
