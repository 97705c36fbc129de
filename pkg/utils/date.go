package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// IsDate informa se a string está no formato YYYY-MM-DD.
func IsDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}

// NormalizeDate trunca datas com timestamp (ex.: "2024-06-01 00:00:00") para
// os dez primeiros caracteres YYYY-MM-DD. Strings mais curtas voltam intactas.
func NormalizeDate(raw string) string {
	if len(raw) >= 10 {
		return raw[:10]
	}
	return raw
}
