package apimodels

type AnalysisResponse struct {
	// The model's textual analysis
	Result string `json:"result"`

	// Metadata about the analysis
	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	// Time taken for analysis
	Duration string `json:"duration"`

	// Model used for analysis
	Model string `json:"model"`

	// Tokens used in analysis
	TokensUsed int64 `json:"tokensUsed"`

	// Number of file lines included in the prompt
	LinesAnalyzed int `json:"linesAnalyzed"`
}
