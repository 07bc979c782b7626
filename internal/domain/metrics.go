package domain

// GlobalMetrics holds the platform-wide impact counters shown on the
// dashboard.
type GlobalMetrics struct {
	TotalCountries int     `json:"totalCountries"`
	TotalProjects  int     `json:"totalProjects"`
	TotalVillages  int     `json:"totalVillages"`
	TotalRaised    float64 `json:"totalRaised"`
}

// DefaultGlobalMetrics is served by the in-memory store and used as the
// fallback whenever metrics cannot be loaded.
var DefaultGlobalMetrics = GlobalMetrics{
	TotalCountries: 12,
	TotalProjects:  524,
	TotalVillages:  1342,
	TotalRaised:    274500,
}
