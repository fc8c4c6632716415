package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskAnalyze  TaskType = "analyze"
	TaskPriority TaskType = "priority"
	TaskBrief    TaskType = "brief"
	TaskInsight  TaskType = "insight"
	TaskReport   TaskType = "report"
	TaskClassify TaskType = "classify"
	TaskAsk      TaskType = "ask"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			// Classification runs cold and short; narrative tasks get room.
			TaskClassify: {Temperature: 0.1, MaxTokens: 256, TimeoutMs: 6000},
			TaskPriority: {Temperature: 0.1, MaxTokens: 128, TimeoutMs: 6000},
			TaskAnalyze:  {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 10000},
			TaskBrief:    {Temperature: 0.3, MaxTokens: 2048, TimeoutMs: 20000},
			TaskInsight:  {Temperature: 0.3, MaxTokens: 2048, TimeoutMs: 20000},
			TaskReport:   {Temperature: 0.2, MaxTokens: 2048, TimeoutMs: 15000},
			TaskAsk:      {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 10000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("ENJAZ_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ENJAZ_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ENJAZ_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ENJAZ_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ENJAZ_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ENJAZ_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskAnalyze, "ENJAZ_LLM_ANALYZE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPriority, "ENJAZ_LLM_PRIORITY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskBrief, "ENJAZ_LLM_BRIEF_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskInsight, "ENJAZ_LLM_INSIGHT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskReport, "ENJAZ_LLM_REPORT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskClassify, "ENJAZ_LLM_CLASSIFY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskAsk, "ENJAZ_LLM_ASK_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
