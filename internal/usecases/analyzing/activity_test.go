package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

func TestResolveActiveCreatives(t *testing.T) {
	const rulePct = 50.0

	t.Run("Anúncio ACTIVE conta como ativo direto", func(t *testing.T) {
		adStatus := map[meta.AdKey]string{
			{AdName: "ativo", AdSetID: "set1"}: metadomain.StatusActive,
		}

		active, traces := ResolveActiveCreatives(nil, adStatus, nil, rulePct)

		assert.True(t, active["ativo"])
		assert.Empty(t, traces)
	})

	t.Run("PAUSED com gasto acima do percentual do orçamento conta como ativo", func(t *testing.T) {
		key := meta.AdKey{AdName: "pausado_pela_regra", AdSetID: "set1"}

		active, traces := ResolveActiveCreatives(
			map[string]int64{"set1": 1000000},
			map[meta.AdKey]string{key: metadomain.StatusPaused},
			map[meta.AdKey]float64{key: 600000},
			rulePct,
		)

		assert.True(t, active["pausado_pela_regra"])
		assert.Len(t, traces, 1)
		assert.Contains(t, traces[0], "pausado_pela_regra")
	})

	t.Run("PAUSED com gasto abaixo do percentual fica de fora", func(t *testing.T) {
		key := meta.AdKey{AdName: "pausado_manual", AdSetID: "set1"}

		active, traces := ResolveActiveCreatives(
			map[string]int64{"set1": 1000000},
			map[meta.AdKey]string{key: metadomain.StatusPaused},
			map[meta.AdKey]float64{key: 400000},
			rulePct,
		)

		assert.False(t, active["pausado_manual"])
		assert.Empty(t, traces)
	})

	t.Run("PAUSED no limite exato do percentual conta como ativo", func(t *testing.T) {
		key := meta.AdKey{AdName: "no_limite", AdSetID: "set1"}

		active, _ := ResolveActiveCreatives(
			map[string]int64{"set1": 1000000},
			map[meta.AdKey]string{key: metadomain.StatusPaused},
			map[meta.AdKey]float64{key: 500000},
			rulePct,
		)

		assert.True(t, active["no_limite"])
	})

	t.Run("PAUSED sem orçamento no conjunto fica de fora mesmo com gasto", func(t *testing.T) {
		key := meta.AdKey{AdName: "sem_orcamento", AdSetID: "set1"}

		active, _ := ResolveActiveCreatives(
			map[string]int64{},
			map[meta.AdKey]string{key: metadomain.StatusPaused},
			map[meta.AdKey]float64{key: 900000},
			rulePct,
		)

		assert.False(t, active["sem_orcamento"])
	})
}
