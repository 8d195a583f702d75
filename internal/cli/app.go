package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/config"
	"github.com/DarkSyed/sugari-sub000/internal/database"
	"github.com/DarkSyed/sugari-sub000/internal/interfaces"
	"github.com/DarkSyed/sugari-sub000/internal/logger"
	"github.com/DarkSyed/sugari-sub000/internal/services"
	"github.com/DarkSyed/sugari-sub000/internal/utils"
	"gorm.io/gorm"
)

const (
	layoutDateTime = "2006-01-02 15:04"
	layoutDate     = "2006-01-02"
)

// Dependencies holds the open store and the services commands run against.
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Config

	Settings      interfaces.SettingsServiceInterface
	BloodSugar    interfaces.BloodSugarServiceInterface
	Food          interfaces.FoodServiceInterface
	Insulin       interfaces.InsulinServiceInterface
	A1C           interfaces.A1CServiceInterface
	Weight        interfaces.WeightServiceInterface
	BloodPressure interfaces.BloodPressureServiceInterface
	Medications   interfaces.MedicationServiceInterface
}

// openDependencies opens the database named in the loaded config and wires
// every service. Callers must Close when done.
func openDependencies() (*Dependencies, error) {
	db, err := database.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Dependencies{
		DB:            db,
		Config:        cfg,
		Settings:      services.NewSettingsService(db),
		BloodSugar:    services.NewBloodSugarService(db),
		Food:          services.NewFoodService(db),
		Insulin:       services.NewInsulinService(db),
		A1C:           services.NewA1CService(db),
		Weight:        services.NewWeightService(db),
		BloodPressure: services.NewBloodPressureService(db),
		Medications:   services.NewMedicationService(db, cfg.Storage.ImagesDir()),
	}, nil
}

func (d *Dependencies) Close() {
	database.Close(d.DB)
}

// settingsOrDefaults loads the settings singleton for display purposes.
// A failed read is logged and answered with the defaults so unit rendering
// keeps working even when the settings row cannot be loaded.
func settingsOrDefaults(ctx context.Context, svc interfaces.SettingsServiceInterface) *database.UserSettings {
	settings, err := svc.GetSettings(ctx)
	if err != nil {
		logger.Warningf("failed to load settings, using defaults: %v", err)
		defaults := database.DefaultSettings()
		return &defaults
	}
	return settings
}

// parseID parses a positional row id argument.
func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("invalid id %q", arg))
	}
	return uint(id), nil
}

// parseWhen parses a local timestamp flag, accepting a date with or without
// a time of day.
func parseWhen(s string) (int64, error) {
	if t, err := time.ParseInLocation(layoutDateTime, s, time.Local); err == nil {
		return utils.ToMillis(t), nil
	}
	t, err := time.ParseInLocation(layoutDate, s, time.Local)
	if err != nil {
		return 0, apperrors.NewValidationError(fmt.Sprintf("invalid time %q, want YYYY-MM-DD or YYYY-MM-DD HH:MM", s))
	}
	return utils.ToMillis(t), nil
}

// parseRange resolves --from/--to/--days into an inclusive millisecond range.
// A bare --to date extends to the end of that day. With nothing supplied the
// range covers the last `days` days, and all history when days is zero.
func parseRange(from, to string, days int) (int64, int64, error) {
	now := time.Now()
	start := int64(0)
	end := utils.ToMillis(now)

	if from == "" && to == "" {
		if days > 0 {
			start = utils.ToMillis(now.AddDate(0, 0, -days))
		}
		return start, end, nil
	}

	if from != "" {
		s, err := parseWhen(from)
		if err != nil {
			return 0, 0, err
		}
		start = s
	}
	if to != "" {
		e, err := parseWhen(to)
		if err != nil {
			return 0, 0, err
		}
		if len(to) <= len(layoutDate) {
			e += int64(24*time.Hour/time.Millisecond) - 1
		}
		end = e
	}
	if start > end {
		return 0, 0, apperrors.NewValidationError("range start is after range end")
	}
	return start, end, nil
}

// fmtWhen renders a stored millisecond timestamp in local time.
func fmtWhen(ms int64) string {
	return utils.FromMillis(ms).Format(layoutDateTime)
}

func strOrDash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}
