package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mato-o/birdwatching-db-app/internal/datastore"
	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// weatherRepository implements WeatherRepository.
type weatherRepository struct {
	store *datastore.Store
}

// NewWeatherRepository creates a new WeatherRepository.
func NewWeatherRepository(store *datastore.Store) WeatherRepository {
	return &weatherRepository{store: store}
}

func (r *weatherRepository) Record(ctx context.Context, eventID uint, recordedAt time.Time, temperature, windSpeed float64, humidity int, conditions string) (*entities.WeatherRecord, error) {
	start := time.Now()

	record := &entities.WeatherRecord{
		EventID:     eventID,
		RecordedAt:  recordedAt,
		Temperature: temperature,
		WindSpeed:   windSpeed,
		Humidity:    humidity,
		Conditions:  conditions,
	}

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		var event entities.Event
		if err := lockRow(r.store, tx, &event, eventID, ErrEventNotFound); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(record).Error
	}))

	r.store.Track("record_weather", tableWeatherRecords, start, err)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *weatherRepository) ListForEvent(ctx context.Context, eventID uint) ([]entities.WeatherRecord, error) {
	var records []entities.WeatherRecord
	err := r.store.DB.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("recorded_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, translate(err)
	}
	return records, nil
}

func (r *weatherRepository) Latest(ctx context.Context) (*entities.WeatherRecord, error) {
	var record entities.WeatherRecord
	err := r.store.DB.WithContext(ctx).
		Order("recorded_at DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &record, nil
}
