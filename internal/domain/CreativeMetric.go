package domain

// CreativeFamily classifica o método de produção do criativo, inferido pelo
// nome do conjunto de anúncios que o contém.
type CreativeFamily string

const (
	FamilyDA    CreativeFamily = "DA"     // Criativos estáticos (imagem)
	FamilyVA    CreativeFamily = "VA"     // Criativos de vídeo
	FamilyOther CreativeFamily = "OUTROS" // Sem convenção reconhecida no nome
)

// CreativeMetric é uma linha agregada por (nome do criativo, família).
// Os valores derivados são calculados depois da soma, nunca antes.
type CreativeMetric struct {
	AdName          string         `json:"ad_name"`
	Family          CreativeFamily `json:"family"`
	Spend           float64        `json:"spend"`
	Purchases       int            `json:"purchases"`
	Registrations   int            `json:"registrations"`
	Revenue         float64        `json:"revenue"`
	ROAS            float64        `json:"roas"`
	CPAPurchase     float64        `json:"cpa_purchase"`
	CPARegistration float64        `json:"cpa_registration"`
}
