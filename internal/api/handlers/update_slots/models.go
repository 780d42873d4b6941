package update_slots

import "github.com/m04kA/SMC-CleaningService/internal/service/slots/models"

// SetEnabledRequest HTTP request model
type SetEnabledRequest struct {
	SlotIDs []int64 `json:"slotIds"`
	Enabled bool    `json:"enabled"`
}

// SetEnabledResponse HTTP response model
type SetEnabledResponse struct {
	Affected int64 `json:"affected"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetEnabledRequest) ToServiceRequest() *models.SetEnabledRequest {
	return &models.SetEnabledRequest{
		SlotIDs: r.SlotIDs,
		Enabled: r.Enabled,
	}
}
