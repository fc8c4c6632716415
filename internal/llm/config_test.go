package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_AnalyzeTimeoutMatchesGlobalDefault(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10000, cfg.Tasks[TaskAnalyze].TimeoutMs)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("ENJAZ_LLM_TIMEOUT_MS", "9000")
	t.Setenv("ENJAZ_LLM_ANALYZE_TIMEOUT_MS", "15000")
	t.Setenv("ENJAZ_LLM_CLASSIFY_TIMEOUT_MS", "3000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskAnalyze))
	assert.Equal(t, 3000, cfg.TaskTimeout(TaskClassify))
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskBrief))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("ENJAZ_LLM_ANALYZE_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 10000, cfg.TaskTimeout(TaskAnalyze))
}
