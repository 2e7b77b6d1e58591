package entities

import "time"

// WeatherRecord captures the weather observed during an event. One record
// per event and observation time.
type WeatherRecord struct {
	ID          uint      `gorm:"primaryKey"`
	EventID     uint      `gorm:"not null;index;uniqueIndex:idx_weather_event_time"`
	RecordedAt  time.Time `gorm:"not null;uniqueIndex:idx_weather_event_time"`
	Temperature float64
	WindSpeed   float64
	Humidity    int
	Conditions  string

	Event Event `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName overrides the default table name.
func (WeatherRecord) TableName() string {
	return "weather_records"
}
