package workouts

import (
	"regexp"
	"strconv"
)

var (
	weightWithUnitRegex = regexp.MustCompile(`(?i)(\d+(\.\d+)?)\s*(lbs|lb|kg|kgs)`)
	leadingNumberRegex  = regexp.MustCompile(`^(\d+(\.\d+)?)`)
)

// ExtractWeight pulls the working weight out of free-text exercise notes:
// the first number followed by a unit, else a leading number, else nil.
func ExtractWeight(notes *string) *float64 {
	if notes == nil || *notes == "" {
		return nil
	}

	if m := weightWithUnitRegex.FindStringSubmatch(*notes); m != nil {
		return parseWeight(m[1])
	}
	if m := leadingNumberRegex.FindStringSubmatch(*notes); m != nil {
		return parseWeight(m[1])
	}

	return nil
}

func parseWeight(s string) *float64 {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &w
}
