package sz

// EntityID identifies a resolved entity in the repository. Entity IDs are
// assigned by the engine and may be reassigned after a purge.
type EntityID int64

// ConfigID identifies a configuration registered in the repository.
type ConfigID int64

// FeatureID identifies a stored feature value.
type FeatureID int64

// RecordKey addresses a source record by data source code and record ID.
type RecordKey struct {
	DataSource string
	RecordID   string
}
