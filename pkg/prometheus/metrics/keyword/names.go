package keyword

const (
	namespace = "ownership_"

	HoldersConstructedMetricName = namespace + "holders_constructed_total"
	HoldersDestroyedMetricName   = namespace + "holders_destroyed_total"
	HoldersAliveMetricName       = namespace + "holders_alive"
	SharedReferencesMetricName   = namespace + "shared_references"
	ReleasesMetricName           = namespace + "releases_total"
)
