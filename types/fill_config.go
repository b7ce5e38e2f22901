package types

// FillConfig is the validated form of the command-line input.
//
// It is produced once by the input validator and never mutated afterwards.
type FillConfig struct {
	// Mode selects the sequential or the partitioned fill.
	Mode Mode `json:"mode" yaml:"mode"`

	// Length is the number of elements to fill.
	Length int `json:"length" yaml:"length"`
}
