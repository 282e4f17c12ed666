package entity

// DataSource tags where doctor/appointment reads come from. It is resolved
// exactly once at startup by the seeding probe and never changes afterwards.
type DataSource string

const (
	DataSourceLive     DataSource = "live"
	DataSourceFallback DataSource = "fallback"
)

// BackendStatus captures the outcome of the startup probe against the backing
// database. When the domain schema is absent the application keeps running in
// a degraded mode: reads fall back to static sample data and write-dependent
// operations are disabled.
type BackendStatus struct {
	Source        DataSource
	DatabaseReady bool
}

// Ready reports whether write-dependent operations are enabled.
func (s *BackendStatus) Ready() bool {
	return s != nil && s.DatabaseReady
}
