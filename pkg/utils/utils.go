package utils

import (
	"os"
	"strings"
	"time"

	"mvdan.cc/xurls/v2"
)

var urlFinder = xurls.Strict()

// ExtractURL pulls the first URL out of a free-form string. The model
// sometimes wraps tool arguments in prose instead of passing the bare link.
func ExtractURL(s string) string {
	return urlFinder.FindString(strings.TrimSpace(s))
}

func FormatDate(t time.Time) string {
	if t.Unix() <= 0 {
		return ""
	}

	return t.In(getTz()).Format("2006-01-02 15:04:05")
}

func FormatWeekday(t time.Time) string {
	return t.In(getTz()).Weekday().String()
}

func getTz() *time.Location {
	tz, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		os.Stderr.WriteString("Failed to load timezone: " + err.Error())
		os.Exit(1)
	}
	return tz
}

func GetOkJSON() []byte {
	return []byte(`{"is_ok":true}`)
}
