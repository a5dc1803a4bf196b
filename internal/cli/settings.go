package cli

import (
	"time"

	"cloudeng.io/errors"

	"datefield/internal/dateinput"
	"datefield/internal/locale"
	"datefield/internal/model"
	"datefield/internal/pattern"
)

// settings is the validated form of the persistent flags.
type settings struct {
	cfg   dateinput.Config
	value model.Value
	env   dateinput.Env
}

// settings validates every flag and reports all problems at once.
func (app *App) settings() (settings, error) {
	var errs errors.M
	var s settings

	tag, err := locale.Parse(app.Locale)
	if err != nil {
		errs.Append(&invalidFlagError{flag: "locale", value: app.Locale, err: err})
	}
	maxDetail, err := model.ParseMaxDetail(app.MaxDetail)
	if err != nil {
		errs.Append(&invalidFlagError{flag: "max-detail", value: app.MaxDetail, err: err})
	}
	mode, err := model.ParseReturnMode(app.Return)
	if err != nil {
		errs.Append(&invalidFlagError{flag: "return", value: app.Return, err: err})
	}
	minDate := parseLimit(&errs, "min", app.Min)
	maxDate := parseLimit(&errs, "max", app.Max)
	if minDate != nil && maxDate != nil && minDate.After(*maxDate) {
		errs.Append(&limitsOrderError{min: app.Min, max: app.Max})
	}
	value, err := model.ParseValue(app.Value)
	if err != nil {
		errs.Append(&invalidFlagError{flag: "value", value: app.Value, err: err})
	}
	if app.Pattern != "" {
		if _, err := pattern.Parse(app.Pattern, true); err != nil {
			errs.Append(&invalidFlagError{flag: "pattern", value: app.Pattern, err: err})
		}
	}
	if err := errs.Err(); err != nil {
		return settings{}, err
	}

	catalog, err := locale.NewCatalog()
	if err != nil {
		return settings{}, err
	}
	s.cfg = dateinput.Config{
		Locale:           tag,
		MaxDetail:        maxDetail,
		Format:           app.Pattern,
		ReturnMode:       mode,
		Limits:           model.Limits{Min: minDate, Max: maxDate},
		ShowLeadingZeros: app.LeadingZeros,
		Required:         app.Required,
		Disabled:         app.Disabled,
	}
	s.value = value
	s.env = dateinput.Env{Catalog: catalog, Now: time.Now}
	return s, nil
}

func parseLimit(errs *errors.M, flag, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := model.ParseDate(raw)
	if err != nil {
		errs.Append(&invalidFlagError{flag: flag, value: raw, err: err})
		return nil
	}
	return &t
}
