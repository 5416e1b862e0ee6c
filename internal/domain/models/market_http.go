package models

// Requests for market HTTP endpoints. Defined in domain for consistency and reuse.

type ListAssetsRequest struct {
	Skip  int `query:"skip" json:"skip" default:"0" validate:"gte=0"`
	Limit int `query:"limit" json:"limit" default:"20" validate:"gte=1,lte=250"`
}

type AssetRequest struct {
	ID string `param:"id" json:"id" validate:"required"`
}

type HistoryRequest struct {
	ID   string `param:"id" json:"id" validate:"required"`
	Days int    `query:"days" json:"days" default:"30" validate:"gte=1,lte=365"`
}

type VolumeRequest struct {
	ID   string `param:"id" json:"id" validate:"required"`
	Days int    `query:"days" json:"days" default:"30" validate:"gte=1,lte=365"`
}
