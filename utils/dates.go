package utils

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the YYYY-MM-DD layout used in JSON inputs.
const DateLayout = "2006-01-02"

// ParseDate converts YYYY-MM-DD to a UTC time.Time.
func ParseDate(strDate string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("ParseDate: %w", err)
	}
	return t, nil
}

// Days returns the number of calendar days between two dates.
func Days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

// RoundTo rounds a float to the specified decimal places.
func RoundTo(val float64, decimals uint32) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
