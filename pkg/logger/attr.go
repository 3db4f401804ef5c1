package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// CompanyID records the effective company under the key "company_id".
func CompanyID(id int64) slog.Attr {
	return slog.Int64("company_id", id)
}

// UserID records the numeric user id under the key "user_id".
func UserID(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}

// CountryID records the country id under the key "country_id".
func CountryID(id int64) slog.Attr {
	return slog.Int64("country_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
