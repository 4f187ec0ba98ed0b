package config

// Model is the unified representation of one or more settings files.
type Model struct {
	LogLevel  *string
	LogFormat *string
	BMI       *BMI
	Countdown *Countdown
}

// BMI holds settings for the bmi program.
type BMI struct {
	Mode   *string
	Weight *float64
	Height *float64
}

// Countdown holds settings for the countdown program.
type Countdown struct {
	Prompt *string
}

// Merge overlays the fields set in other onto m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	overlay(&m.LogLevel, other.LogLevel)
	overlay(&m.LogFormat, other.LogFormat)

	if other.BMI != nil {
		if m.BMI == nil {
			m.BMI = &BMI{}
		}
		overlay(&m.BMI.Mode, other.BMI.Mode)
		overlay(&m.BMI.Weight, other.BMI.Weight)
		overlay(&m.BMI.Height, other.BMI.Height)
	}
	if other.Countdown != nil {
		if m.Countdown == nil {
			m.Countdown = &Countdown{}
		}
		overlay(&m.Countdown.Prompt, other.Countdown.Prompt)
	}
}

func overlay[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
