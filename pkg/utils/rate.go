package utils

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Rate calcula uma razão de forma segura: retorna 0 quando o denominador
// é menor ou igual a zero (dados negativos também são tratados como
// inválidos) e arredonda o resultado para 4 casas decimais. Entradas não
// finitas (NaN/Inf) são absorvidas como 0 — o cálculo nunca interrompe o
// pipeline
func Rate(numerator, denominator, multiplier float64) float64 {
	if !isFinite(numerator) || !isFinite(denominator) || !isFinite(multiplier) {
		logrus.WithFields(logrus.Fields{
			"numerator":   numerator,
			"denominator": denominator,
			"multiplier":  multiplier,
		}).Warn("Entrada inválida no cálculo de taxa, retornando 0")
		return 0
	}

	if denominator <= 0 {
		return 0
	}

	return Round4(numerator / denominator * multiplier)
}

// Round4 arredonda para 4 casas decimais
func Round4(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10000) / 10000
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Float64OrZero converte um valor opcional em float64, tratando nil como 0
func Float64OrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// Int64OrZero converte um valor opcional em int64, tratando nil como 0
func Int64OrZero(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
