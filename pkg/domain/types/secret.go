package types

import "log/slog"

type (
	// DatabaseURL is a postgres connection string. It usually carries a password.
	DatabaseURL string

	// WebhookURL is the notification relay endpoint. The URL itself is the credential.
	WebhookURL string

	// RunToken authenticates callers of the run trigger endpoints.
	RunToken string
)

func (x DatabaseURL) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DatabaseURL) String() string {
	return "***********"
}

func (x WebhookURL) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookURL) String() string {
	return "***********"
}

func (x RunToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x RunToken) String() string {
	return "***********"
}
