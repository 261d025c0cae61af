package constants

// US timezones a school may be configured with.
var AllowedTimezones = []string{
	"America/New_York", "America/Chicago", "America/Denver", "America/Phoenix",
	"America/Los_Angeles", "America/Anchorage", "Pacific/Honolulu",
}

const DefaultTimezone = "America/Chicago"

func IsAllowedTimezone(tz string) bool {
	for _, t := range AllowedTimezones {
		if t == tz {
			return true
		}
	}
	return false
}
