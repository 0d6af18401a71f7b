package dataset

import "errors"

var (
	// ErrMalformedDataset is returned when the dataset lacks the structure the indexer relies on.
	ErrMalformedDataset = errors.New("dataset: malformed dataset")
	// ErrUnknownSource is returned by NewSource for an unsupported source name.
	ErrUnknownSource = errors.New("dataset: unknown source")
	// ErrSourceUnavailable is returned when the selected source lacks its backing client.
	ErrSourceUnavailable = errors.New("dataset: source backend unavailable")
)
