package events

// ServiceCategory define los tipos de servicio contratado que se controlan.
type ServiceCategory string

const (
	CategoryCleaning    ServiceCategory = "CLEANING"
	CategorySecurity    ServiceCategory = "SECURITY"
	CategoryCatering    ServiceCategory = "CATERING"
	CategoryMaintenance ServiceCategory = "MAINTENANCE"
	CategoryGardening   ServiceCategory = "GARDENING"
	CategoryPestControl ServiceCategory = "PEST_CONTROL"
	CategoryWaste       ServiceCategory = "WASTE_DISPOSAL"
)

var validCategories = map[ServiceCategory]bool{
	CategoryCleaning:    true,
	CategorySecurity:    true,
	CategoryCatering:    true,
	CategoryMaintenance: true,
	CategoryGardening:   true,
	CategoryPestControl: true,
	CategoryWaste:       true,
}

// IsValidCategory valida pertenencia estricta al conjunto enumerado.
func IsValidCategory(c ServiceCategory) bool {
	return validCategories[c]
}
