package analyzing

import (
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

// Tipos de evento, em dupla: tag legada do pixel e tag padrão atual.
const (
	actionPurchase          = "purchase"
	actionPixelPurchase     = "offsite_conversion.fb_pixel_purchase"
	actionRegistration      = "complete_registration"
	actionPixelRegistration = "offsite_conversion.fb_pixel_complete_registration"
)

// NormalizedActions é a tupla achatada de um insight bruto.
type NormalizedActions struct {
	Purchases     int
	Registrations int
	Revenue       float64
}

// NormalizeInsight extrai compras, cadastros e receita de um insight.
// Quando a tag legada e a padrão aparecem no mesmo registro, vale a padrão:
// somar as duas contaria o mesmo evento em dobro.
func NormalizeInsight(insight metadomain.AdInsight) NormalizedActions {
	purchaseCounts := map[string]int{}
	registrationCounts := map[string]int{}

	for _, action := range insight.Actions {
		switch action.ActionType {
		case actionPurchase, actionPixelPurchase:
			purchaseCounts[action.ActionType] = int(action.FloatValue())
		case actionRegistration, actionPixelRegistration:
			registrationCounts[action.ActionType] = int(action.FloatValue())
		}
	}

	revenueValues := map[string]float64{}
	for _, actionValue := range insight.ActionValues {
		switch actionValue.ActionType {
		case actionPurchase, actionPixelPurchase:
			revenueValues[actionValue.ActionType] = actionValue.FloatValue()
		}
	}

	return NormalizedActions{
		Purchases:     pickInt(purchaseCounts, actionPurchase, actionPixelPurchase),
		Registrations: pickInt(registrationCounts, actionRegistration, actionPixelRegistration),
		Revenue:       pickFloat(revenueValues, actionPurchase, actionPixelPurchase),
	}
}

func pickInt(values map[string]int, preferred, fallback string) int {
	if value, ok := values[preferred]; ok {
		return value
	}
	return values[fallback]
}

func pickFloat(values map[string]float64, preferred, fallback string) float64 {
	if value, ok := values[preferred]; ok {
		return value
	}
	return values[fallback]
}
