package domain

// Tipos espelhando o esquema da TikTok Business API. Os nomes dos campos
// JSON precisam ser preservados byte a byte para manter compatibilidade
// com a API remota

type AdGroup struct {
	AdGroupID       string `json:"adgroup_id"`
	OperationStatus string `json:"operation_status"`
	CreateTime      string `json:"create_time"`
}

type Filtering struct {
	AdGroupIDs []string `json:"adgroup_ids"`
}

type AdGroupGetRequest struct {
	AdvertiserID string    `json:"advertiser_id"`
	Filtering    Filtering `json:"filtering"`
}

type AdGroupList struct {
	List []AdGroup `json:"list"`
}

type AdGroupGetResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    AdGroupList `json:"data"`
}

type StatusUpdateRequest struct {
	AdvertiserID    string   `json:"advertiser_id"`
	AdGroupIDs      []string `json:"adgroup_ids"`
	OperationStatus string   `json:"operation_status"`
}

type StatusUpdateResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Vocabulário de operation_status aceito pela API
const (
	OperationStatusEnable  = "ENABLE"
	OperationStatusDisable = "DISABLE"
	OperationStatusFrozen  = "FROZEN"
)
