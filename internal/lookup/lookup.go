// Package lookup provides the hardcoded weather and time tools. The data is
// canned: these tools exist so the orchestration layer has deterministic
// lookups to exercise, not as real integrations.
package lookup

import (
	"fmt"
	"strings"
	"time"
)

// Result status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the uniform lookup result union.
type Result struct {
	Status       string `json:"status"`
	Report       string `json:"report,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// weatherReports holds the canned per-city weather reports.
var weatherReports = map[string]string{
	"new york": "The weather in New York is sunny with a temperature of 25 degrees Celsius (77 degrees Fahrenheit).",
	"london":   "The weather in London is cloudy with a temperature of 15 degrees Celsius (59 degrees Fahrenheit).",
	"tokyo":    "The weather in Tokyo is rainy with a temperature of 18 degrees Celsius (64 degrees Fahrenheit).",
}

// cityTimezones maps supported cities to their IANA time zone names.
var cityTimezones = map[string]string{
	"new york": "America/New_York",
	"london":   "Europe/London",
	"tokyo":    "Asia/Tokyo",
}

// Weather returns the canned weather report for a city.
func Weather(city string) Result {
	key := strings.ToLower(strings.TrimSpace(city))
	if report, ok := weatherReports[key]; ok {
		return Result{Status: StatusSuccess, Report: report}
	}
	return Result{
		Status:       StatusError,
		ErrorMessage: fmt.Sprintf("Weather information for '%s' is not available.", city),
	}
}

// CurrentTime returns the current time in a supported city.
func CurrentTime(city string) Result {
	key := strings.ToLower(strings.TrimSpace(city))
	tzName, ok := cityTimezones[key]
	if !ok {
		return Result{
			Status:       StatusError,
			ErrorMessage: fmt.Sprintf("Sorry, I don't have timezone information for %s.", city),
		}
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return Result{
			Status:       StatusError,
			ErrorMessage: fmt.Sprintf("Failed to load timezone for %s: %v", city, err),
		}
	}

	now := time.Now().In(loc)
	return Result{
		Status: StatusSuccess,
		Report: fmt.Sprintf("The current time in %s is %s", city, now.Format("2006-01-02 15:04:05 MST-0700")),
	}
}
