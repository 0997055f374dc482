package model

import (
	"fmt"
	"time"
)

func fmtSprintf(format string, args ...any) string { return fmt.Sprintf(format, args...) }

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
