package models

// Requests for analytics and news HTTP endpoints.

type SignalRequest struct {
	ID      string `param:"id" json:"id" validate:"required"`
	Horizon string `query:"horizon" json:"horizon" default:"short" validate:"oneof=short long"`
}

type CorrelationRequest struct {
	ID   string `param:"id" json:"id" validate:"required"`
	Days int    `query:"days" json:"days" default:"180" validate:"gte=2,lte=365"`
}

type VolatilityRequest struct {
	ID   string `param:"id" json:"id" validate:"required"`
	Days int    `query:"days" json:"days" default:"90" validate:"gte=2,lte=365"`
}

type SentimentRequest struct {
	ID string `param:"id" json:"id" validate:"required"`
}

type ProfitLossRequest struct {
	Asset         string  `query:"asset" json:"asset" validate:"required"`
	Amount        float64 `query:"amount" json:"amount" validate:"required,gt=0"`
	PurchasePrice float64 `query:"purchase_price" json:"purchase_price" validate:"required,gt=0"`
	Operation     string  `query:"operation" json:"operation" default:"long" validate:"oneof=long short"`
}

type NewsRequest struct {
	Limit int `query:"limit" json:"limit" default:"20" validate:"gte=1,lte=100"`
}
