package models

// HistoryRequest filters the stored-readings query.
type HistoryRequest struct {
	SensorID string `query:"sensor_id" validate:"required"`
	Hours    int    `query:"hours" default:"24" validate:"gte=1,lte=720"`
	Limit    int    `query:"limit" default:"500" validate:"gte=1,lte=5000"`
}
