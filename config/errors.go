package config

import "errors"

var (
	// ErrPlaceholder is the parent of every placeholder error, so callers can
	// match either kind with a single errors.Is.
	ErrPlaceholder = errors.New("placeholder value left unset")

	// ErrPlaceholderKey means the API key is still the documented placeholder.
	ErrPlaceholderKey = placeholderError("please set your API key (generate one in WordPress: Settings > LLM Connector)")

	// ErrPlaceholderURL means the site URL is still the documented placeholder.
	ErrPlaceholderURL = placeholderError("please set your WordPress URL")

	// ErrEmptyValue means a required setting is blank.
	ErrEmptyValue = errors.New("required setting is empty")
)

type placeholderErr struct {
	msg string
}

func placeholderError(msg string) error {
	return &placeholderErr{msg: msg}
}

func (e *placeholderErr) Error() string { return e.msg }

func (e *placeholderErr) Unwrap() error { return ErrPlaceholder }
