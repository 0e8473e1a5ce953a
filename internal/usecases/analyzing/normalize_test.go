package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

func TestNormalizeInsight(t *testing.T) {
	t.Run("Tag padrão tem precedência sobre a legada, nunca soma", func(t *testing.T) {
		insight := metadomain.AdInsight{
			Actions: []metadomain.Action{
				{ActionType: "purchase", Value: "3"},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "3"},
			},
			ActionValues: []metadomain.Action{
				{ActionType: "purchase", Value: "150000"},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "150000"},
			},
		}

		normalized := NormalizeInsight(insight)

		assert.Equal(t, 3, normalized.Purchases)
		assert.Equal(t, 150000.0, normalized.Revenue)
	})

	t.Run("Só a tag legada presente usa a legada", func(t *testing.T) {
		insight := metadomain.AdInsight{
			Actions: []metadomain.Action{
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "2"},
				{ActionType: "offsite_conversion.fb_pixel_complete_registration", Value: "7"},
			},
			ActionValues: []metadomain.Action{
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "80000"},
			},
		}

		normalized := NormalizeInsight(insight)

		assert.Equal(t, 2, normalized.Purchases)
		assert.Equal(t, 7, normalized.Registrations)
		assert.Equal(t, 80000.0, normalized.Revenue)
	})

	t.Run("Ações irrelevantes são ignoradas", func(t *testing.T) {
		insight := metadomain.AdInsight{
			Actions: []metadomain.Action{
				{ActionType: "link_click", Value: "500"},
				{ActionType: "video_view", Value: "9000"},
			},
		}

		normalized := NormalizeInsight(insight)

		assert.Zero(t, normalized.Purchases)
		assert.Zero(t, normalized.Registrations)
		assert.Zero(t, normalized.Revenue)
	})

	t.Run("Valor não numérico vira zero", func(t *testing.T) {
		insight := metadomain.AdInsight{
			Actions: []metadomain.Action{
				{ActionType: "purchase", Value: "abc"},
			},
		}

		normalized := NormalizeInsight(insight)

		assert.Zero(t, normalized.Purchases)
	})
}
