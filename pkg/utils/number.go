package utils

import "strconv"

// ParseFloatOrZero converte o valor de gasto reportado pela API. Valores
// ausentes ou não numéricos viram 0.0, nunca erro.
func ParseFloatOrZero(raw string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return value
}
