package analyzers

// NeuroParams configures the binaural-beat planning.
type NeuroParams struct {
	GammaCapHz float64 `json:"gamma_cap_hz"` // nominal upper edge of the gamma band
}

// DefaultNeuroParams returns the conventional 100 Hz gamma cap.
func DefaultNeuroParams() NeuroParams {
	return NeuroParams{GammaCapHz: 100.0}
}

// EEGBand is one canonical brainwave band with its associated mental state.
type EEGBand struct {
	Name   string  `json:"name"`
	LowHz  float64 `json:"low_hz"`
	HighHz float64 `json:"high_hz"`
	State  string  `json:"state"`
}

// eegBands lists the canonical bands; the gamma upper edge is nominal and
// replaced by the configured cap at analysis time.
var eegBands = []EEGBand{
	{"Delta", 0.5, 4, "deep dreamless sleep and bodily repair"},
	{"Theta", 4, 8, "meditative absorption and hypnagogic imagery"},
	{"Alpha", 8, 12, "relaxed wakeful calm, eyes closed"},
	{"Beta", 12, 30, "active outward-directed thinking"},
	{"Gamma", 30, 100, "peak concentration and perceptual binding"},
}

// BeatWindow is a range of companion frequencies that beat against the
// drone at rates inside one EEG band. Windows that would cross 0 Hz are
// infeasible rather than clamped.
type BeatWindow struct {
	LowHz    float64 `json:"low_hz"`
	HighHz   float64 `json:"high_hz"`
	Feasible bool    `json:"feasible"`
}

// BandPlan pairs an EEG band with its companion windows above and below the
// drone and a suggested companion tone at the band center.
type BandPlan struct {
	Band        EEGBand    `json:"band"`
	Above       BeatWindow `json:"above"` // [f0+low, f0+high)
	Below       BeatWindow `json:"below"` // (f0-high, f0-low]
	CompanionHz float64    `json:"companion_hz"`
}

// NeuroResult lays out binaural-beat companions for a drone at the
// fundamental, one plan per EEG band.
type NeuroResult struct {
	DroneHz float64    `json:"drone_hz"`
	Bands   []BandPlan `json:"bands"`
}

// NeuroAnalyzer views a fundamental as a binaural drone.
type NeuroAnalyzer struct {
	params NeuroParams
}

// NewNeuroAnalyzer creates a neuroscience analyzer, filling zero params with
// defaults.
func NewNeuroAnalyzer(params NeuroParams) *NeuroAnalyzer {
	if params.GammaCapHz <= eegBands[4].LowHz {
		params.GammaCapHz = DefaultNeuroParams().GammaCapHz
	}
	return &NeuroAnalyzer{params: params}
}

// Analyze plans companion windows per band. A second tone at f0+d and the
// drone produce a beat of d Hz, so the band [low, high) maps to companion
// windows offset by the band edges on either side of the drone.
func (na *NeuroAnalyzer) Analyze(f0 float64) *NeuroResult {
	plans := make([]BandPlan, len(eegBands))
	for i, band := range eegBands {
		if band.Name == "Gamma" {
			band.HighHz = na.params.GammaCapHz
		}

		center := (band.LowHz + band.HighHz) / 2.0
		plans[i] = BandPlan{
			Band: band,
			Above: BeatWindow{
				LowHz:    f0 + band.LowHz,
				HighHz:   f0 + band.HighHz,
				Feasible: true,
			},
			Below: BeatWindow{
				LowHz:    f0 - band.HighHz,
				HighHz:   f0 - band.LowHz,
				Feasible: f0-band.HighHz > 0,
			},
			CompanionHz: f0 + center,
		}
	}

	return &NeuroResult{DroneHz: f0, Bands: plans}
}
