package types

// Evaluation is one model evaluation as printed by the CLI
type Evaluation struct {
	Distance          float64  `json:"distance_au" yaml:"distance_au"`
	Arc               string   `json:"arc" yaml:"arc"`
	Group             string   `json:"group" yaml:"group"`
	Magnitude         float64  `json:"magnitude" yaml:"magnitude"`
	ObserverDistance  float64  `json:"observer_distance_au,omitempty" yaml:"observer_distance_au,omitempty"`
	ApparentMagnitude *float64 `json:"apparent_magnitude,omitempty" yaml:"apparent_magnitude,omitempty"`
}

// OrbitEvaluation is a model evaluation at a position given by orbital elements
type OrbitEvaluation struct {
	Evaluation    `yaml:",inline"`
	SemiMajorAxis float64 `json:"semi_major_axis_au" yaml:"semi_major_axis_au"`
	Eccentricity  float64 `json:"eccentricity" yaml:"eccentricity"`
	MeanAnomaly   float64 `json:"mean_anomaly_deg" yaml:"mean_anomaly_deg"`
	Perihelion    float64 `json:"perihelion_au" yaml:"perihelion_au"`
}

// ParameterRow is one line of the parameter table, including the derived far intercept
type ParameterRow struct {
	Group string  `json:"group" yaml:"group"`
	KNear float64 `json:"k_near" yaml:"k_near"`
	KFar  float64 `json:"k_far" yaml:"k_far"`
	M1In  float64 `json:"m1_inbound" yaml:"m1_inbound"`
	MFar  float64 `json:"m_far" yaml:"m_far"`
	K1    float64 `json:"k1" yaml:"k1"`
	M1Out float64 `json:"m1_outbound" yaml:"m1_outbound"`
}
