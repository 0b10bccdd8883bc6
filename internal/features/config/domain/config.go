package domain

// AppConfig represents the effective, non-secret application configuration.
type AppConfig struct {
	Provider          string      `json:"provider"`
	ModelParams       ModelParams `json:"model_params"`
	Host              string      `json:"host"`
	Ports             []int       `json:"ports"`
	GenerationTimeout string      `json:"generation_timeout"`
	OpenBrowser       bool        `json:"open_browser"`
}

// ModelParams defines the parameters for the AI model.
type ModelParams struct {
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}
