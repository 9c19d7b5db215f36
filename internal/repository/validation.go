package repository

import (
	"errors"

	"github.com/alumniconnect/portal-api/pkg/logger"
	"github.com/alumniconnect/portal-api/pkg/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// snapshotValidator checks records read from storage against their validate tags.
// Violations are logged and counted; the record is still returned since storage owns the data.
type snapshotValidator struct {
	validate *validator.Validate
}

func newSnapshotValidator() snapshotValidator {
	return snapshotValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// check returns the number of records that failed validation
func check[T any](v snapshotValidator, recordType string, records []T, id func(*T) uuid.UUID) int {
	invalid := 0
	for i := range records {
		if err := v.validate.Struct(&records[i]); err != nil {
			invalid++
			reportInvalid(recordType, id(&records[i]), err)
		}
	}
	return invalid
}

func reportInvalid(recordType string, id uuid.UUID, err error) {
	metrics.InvalidRecords.WithLabelValues(recordType).Inc()

	fields := []zap.Field{
		zap.String("record_type", recordType),
		zap.String("record_id", id.String()),
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			fields = append(fields, zap.String("field."+fe.Field(), fe.Tag()))
		}
	} else {
		fields = append(fields, zap.Error(err))
	}
	logger.Warn("Snapshot record violates invariants", fields...)
}
