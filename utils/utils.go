package utils

import (
	"fmt"
	"strings"
	"time"

	"parcel-delivery/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/now"
)

// GenerateTrackingID builds a public parcel reference like
// PCL-20260901-7F3A2C. The uuid suffix keeps it unguessable without a
// database round trip.
func GenerateTrackingID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("PCL-%s-%s", time.Now().Format("20060102"), suffix)
}

// GenerateTransactionID is the fallback for payments recorded without a
// gateway transaction reference.
func GenerateTransactionID() string {
	return "txn_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// PeriodRange resolves a calendar window name to its [from, to) bounds.
// Supported periods: today, week, month. ok is false for anything else.
func PeriodRange(period string) (from, to time.Time, ok bool) {
	n := now.New(time.Now())
	switch period {
	case "today":
		return n.BeginningOfDay(), n.EndOfDay().Add(time.Nanosecond), true
	case "week":
		return n.BeginningOfWeek(), n.EndOfWeek().Add(time.Nanosecond), true
	case "month":
		return n.BeginningOfMonth(), n.EndOfMonth().Add(time.Nanosecond), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Request bodies above this size are truncated before logging.
const maxLoggedBodyBytes = 4096

// CreateSanitizedLogEntry snapshots the request for the async audit log.
// Authorization material never reaches the log table.
func CreateSanitizedLogEntry(c *fiber.Ctx, statusCode int) types.LogEntry {
	body := string(c.Body())
	if len(body) > maxLoggedBodyBytes {
		body = body[:maxLoggedBodyBytes] + "...(truncated)"
	}

	email, _ := c.Locals("user_email").(string)

	return types.LogEntry{
		Method:      c.Method(),
		URL:         c.OriginalURL(),
		UserEmail:   email,
		ClientIP:    c.IP(),
		RequestBody: body,
		StatusCode:  statusCode,
		CreatedAt:   time.Now(),
	}
}
