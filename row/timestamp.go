package row

import (
	"fmt"
	"strings"
	"time"
)

// FormatTimestamp renders microseconds since the epoch the way exported table
// rows carry TIMESTAMP columns: "2016-01-06 06:38:11.123456 UTC", with trailing
// zeros of the fraction removed and no fraction for whole seconds.
func FormatTimestamp(micros int64) string {
	t := time.UnixMicro(micros).UTC()

	base := t.Format(time.DateTime)

	frac := t.Nanosecond() / 1000
	if frac == 0 {
		return base + " UTC"
	}

	digits := strings.TrimRight(fmt.Sprintf("%06d", frac), "0")

	return base + "." + digits + " UTC"
}
