package analysis

// SeriesSummary holds the calculated statistics for one selected series.
type SeriesSummary struct {
	Name           string // Canonical series name, e.g. "Total_Reflection"
	NumValid       int    // Number of valid (non-NaN) samples
	Min            float64
	Max            float64
	Mean           float64
	StdDev         float64 // Population std dev
	Range          float64
	PeakWavelength float64 // Wavelength of the first sample equal to Max
}

// AnalysisResults holds all results from the analysis.
type AnalysisResults struct {
	Summaries      []SeriesSummary // CanonicalOrder of the selection
	WavelengthMin  float64
	WavelengthMax  float64
	NumRows        int
	AnalysisErrors []string
}

func NewAnalysisResults() *AnalysisResults {
	return &AnalysisResults{
		Summaries:      make([]SeriesSummary, 0),
		AnalysisErrors: make([]string, 0),
	}
}
