package assistant

import (
	"encoding/json"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/dailyctx"
)

type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"` // user | assistant | system
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type ChatRequest struct {
	Messages []ChatMessage   `json:"messages"`
	Context  dailyctx.Context `json:"context"`
}

type ModelRef struct {
	Provider string `json:"provider"`
	Name     string `json:"name"`
}

type ChatResponse struct {
	Success   bool            `json:"success"`
	Response  string          `json:"response"`
	Analysis  json.RawMessage `json:"analysis,omitempty"`
	Model     ModelRef        `json:"model"`
	Timestamp string          `json:"timestamp"`
}

type MemoryInfo struct {
	Allocated    float64 `json:"allocated"`
	Cached       float64 `json:"cached"`
	MaxAllocated float64 `json:"max_allocated"`
}

type HealthCheck struct {
	Status      string     `json:"status"`
	Timestamp   string     `json:"timestamp"`
	ModelLoaded bool       `json:"model_loaded"`
	MemoryInfo  MemoryInfo `json:"memory_info"`
}

type ModelStatus struct {
	Loaded          bool   `json:"loaded"`
	ModelName       string `json:"model_name"`
	Device          string `json:"device"`
	EstimatedMemory string `json:"estimated_memory"`
	CUDAAvailable   bool   `json:"cuda_available"`
}

type ModelDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
	Type        string `json:"type"`
	Available   bool   `json:"available"`
	Current     bool   `json:"current"`
}

type SystemInfo struct {
	CUDAAvailable bool    `json:"cuda_available"`
	TorchVersion  string  `json:"torch_version"`
	CPUCores      int     `json:"cpu_cores"`
	TotalRAMGB    float64 `json:"total_ram_gb"`
	GPUName       string  `json:"gpu_name,omitempty"`
	GPUMemoryGB   float64 `json:"gpu_memory_gb,omitempty"`
}

type AvailableModels struct {
	API     []ModelDescriptor `json:"api"`
	Current ModelRef          `json:"current"`
	System  SystemInfo        `json:"system"`
}

type CurrentModel struct {
	Provider  string         `json:"provider"`
	Name      string         `json:"name"`
	Info      map[string]any `json:"info,omitempty"`
	Available bool           `json:"available"`
}

type SwitchRequest struct {
	ModelName string `json:"model_name"`
}

type SwitchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Model   ModelRef `json:"model,omitempty"`
}

// DayAnalysis is the per-category breakdown returned by the day analysis
// endpoint, display only.
type DayAnalysis struct {
	Date     string `json:"date,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Tasks    string `json:"tasks,omitempty"`
	Finances string `json:"finances,omitempty"`
	Workouts string `json:"workouts,omitempty"`
	Diary    string `json:"diary,omitempty"`
	Events   string `json:"events,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
