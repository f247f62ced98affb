package notification

import (
	"math"
	"time"
)

// intervalMinutes maps each interval selector to the number of minutes before
// expiration at which reminders begin.
var intervalMinutes = map[string]int{
	"15m": 15,
	"6h":  360,
	"12h": 720,
	"24h": 1440,
	"2d":  2880,
	"3d":  4320,
}

const (
	// defaultNotificationMinutes is used for unrecognized interval tags.
	defaultNotificationMinutes = 1440

	// overdueGraceMinutes keeps reminders firing for up to one day past
	// expiration.
	overdueGraceMinutes = 1440

	// cooldownMinutes is the minimum spacing between reminders for the same
	// item.
	cooldownMinutes = 15
)

func resolveNotificationMinutes(interval string, customMinutes *int) int {
	if interval == "custom" && customMinutes != nil && *customMinutes > 0 {
		return *customMinutes
	}
	if minutes, ok := intervalMinutes[interval]; ok {
		return minutes
	}
	return defaultNotificationMinutes
}

func minutesUntilExpiration(expirationDate time.Time, now time.Time) int {
	return int(math.Floor(expirationDate.Sub(now).Minutes()))
}

func isDue(minutesUntil int, notificationMinutes int) bool {
	return minutesUntil <= notificationMinutes && minutesUntil > -overdueGraceMinutes
}

func cooldownElapsed(lastSent *time.Time, now time.Time) bool {
	if lastSent == nil {
		return true
	}
	return int(math.Floor(now.Sub(*lastSent).Minutes())) >= cooldownMinutes
}
