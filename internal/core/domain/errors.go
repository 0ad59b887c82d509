package domain

import "go.trai.ch/zerr"

var (
	// ErrSnapshotFailed is returned when the explicit inputs of a rule cannot be snapshotted.
	ErrSnapshotFailed = zerr.New("failed to snapshot rule inputs")

	// ErrUnsupportedSnapshotValue is returned when a value reachable from the inputs has no stable representation.
	ErrUnsupportedSnapshotValue = zerr.New("value cannot be snapshotted")

	// ErrSnapshotTooDeep is returned when a value nests deeper than the snapshotter allows (usually a cycle).
	ErrSnapshotTooDeep = zerr.New("value nesting too deep to snapshot")

	// ErrCodecUnknownTag is returned when a decoder reads a type tag it does not know.
	ErrCodecUnknownTag = zerr.New("unknown type tag")

	// ErrCodecUnregisteredType is returned when a value's runtime type has no registered serializer.
	ErrCodecUnregisteredType = zerr.New("no serializer registered for type")

	// ErrCodecTypeAlreadyRegistered is returned when a type or type name is registered twice.
	ErrCodecTypeAlreadyRegistered = zerr.New("type already registered")

	// ErrCodecEncodeFailed is returned when a value cannot be encoded.
	ErrCodecEncodeFailed = zerr.New("failed to encode value")

	// ErrCodecDecodeFailed is returned when a value cannot be decoded.
	ErrCodecDecodeFailed = zerr.New("failed to decode value")

	// ErrCodecTruncated is returned when the input ends in the middle of a value.
	ErrCodecTruncated = zerr.New("unexpected end of encoded data")

	// ErrCodecTrailingData is returned when bytes remain after a complete cache entry.
	ErrCodecTrailingData = zerr.New("trailing data after cache entry")

	// ErrStoreOpenFailed is returned when the persistent area cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open rule cache store")

	// ErrStoreReadFailed is returned when an entry cannot be read from the store.
	ErrStoreReadFailed = zerr.New("failed to read cache entry")

	// ErrStoreWriteFailed is returned when an entry cannot be written to the store.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrStoreClearFailed is returned when the store cannot be cleared.
	ErrStoreClearFailed = zerr.New("failed to clear rule cache store")

	// ErrStoreClosed is returned when the store is used after Close.
	ErrStoreClosed = zerr.New("rule cache store is closed")

	// ErrUnknownBackend is returned when the configured storage backend does not exist.
	ErrUnknownBackend = zerr.New("unknown store backend, expected 'sqlite' or 'files'")

	// ErrRuleExecutionFailed is returned when a rule action fails.
	ErrRuleExecutionFailed = zerr.New("rule execution failed")

	// ErrCacheEntryUnreadable is returned when a stored entry cannot be decoded.
	ErrCacheEntryUnreadable = zerr.New("cache entry is unreadable")

	// ErrServiceNotFound is returned when a capturing service name cannot be resolved.
	ErrServiceNotFound = zerr.New("capturing service not found")

	// ErrServiceTypeMismatch is returned when a capturing service returns an unexpected type.
	ErrServiceTypeMismatch = zerr.New("capturing service returned unexpected type")

	// ErrServiceAlreadyRegistered is returned when two capturing services share a name.
	ErrServiceAlreadyRegistered = zerr.New("capturing service already registered")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config contains invalid values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidCoordinate is returned when a module coordinate cannot be parsed.
	ErrInvalidCoordinate = zerr.New("invalid coordinate, expected format: group:name[:version]")

	// ErrNoTargetsSpecified is returned when resolve is called without coordinates.
	ErrNoTargetsSpecified = zerr.New("no coordinates specified")

	// ErrNoRepository is returned when no module repository is configured.
	ErrNoRepository = zerr.New("no module repository configured, set repository.dir or repository.url")

	// ErrRepositoryReadFailed is returned when a local repository cannot be listed.
	ErrRepositoryReadFailed = zerr.New("failed to read module repository")

	// ErrRepositoryRequestFailed is returned when a remote repository request fails.
	ErrRepositoryRequestFailed = zerr.New("failed to query module repository")

	// ErrRepositoryParseFailed is returned when a remote repository response cannot be parsed.
	ErrRepositoryParseFailed = zerr.New("failed to parse module repository response")
)
