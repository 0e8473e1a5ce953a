package utils

import "fmt"

// FormatMoney formata valores monetários em milhares ("mil") para o texto
// dos relatórios. Valores abaixo de mil saem inteiros.
func FormatMoney(amount float64) string {
	if amount >= 1000 {
		return fmt.Sprintf("%.1f mil", amount/1000)
	}

	return fmt.Sprintf("%d", int64(amount))
}

// FormatThresholdLabel formata o limite de gasto usado nos nomes de regras.
// Precisa ser determinístico: o nome da regra é a chave de reconciliação.
func FormatThresholdLabel(amount int64) string {
	thousands := float64(amount) / 1000
	if thousands == float64(int64(thousands)) {
		return fmt.Sprintf("%dmil", int64(thousands))
	}

	return fmt.Sprintf("%.1fmil", thousands)
}
