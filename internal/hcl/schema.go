package hcl

// fileRoot is the top-level layout of a settings file. Anything it does not
// describe is rejected by the decoder.
type fileRoot struct {
	LogLevel  *string         `hcl:"log_level,optional"`
	LogFormat *string         `hcl:"log_format,optional"`
	BMI       *bmiBlock       `hcl:"bmi,block"`
	Countdown *countdownBlock `hcl:"countdown,block"`
}

type bmiBlock struct {
	Mode   *string  `hcl:"mode,optional"`
	Weight *float64 `hcl:"weight,optional"`
	Height *float64 `hcl:"height,optional"`
}

type countdownBlock struct {
	Prompt *string `hcl:"prompt,optional"`
}
