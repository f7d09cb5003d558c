package systems

// Pass IDs, in tick order.
const (
	PassCameraPan  = "cameraPan"
	PassCameraZoom = "cameraZoom"
	PassMotion     = "motion"
	PassReflect    = "reflect"
	PassConfine    = "confine"
)

// SystemInfo describes a pass for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this pass does
	Category    string // Grouping ("camera" or "boxes")
}

// SystemRegistry holds metadata about all passes.
// This centralizes pass naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known passes.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known passes to the registry.
// Update this when adding new passes.
func (r *SystemRegistry) registerDefaults() {
	// Camera
	r.Register(SystemInfo{ID: PassCameraPan, Name: "Camera Pan", Description: "Moves the camera by a fixed step per arrow key", Category: "camera"})
	r.Register(SystemInfo{ID: PassCameraZoom, Name: "Camera Zoom", Description: "Adjusts camera scale in log space", Category: "camera"})

	// Text boxes
	r.Register(SystemInfo{ID: PassMotion, Name: "Motion", Description: "Advances boxes along their direction", Category: "boxes"})
	r.Register(SystemInfo{ID: PassReflect, Name: "Reflect", Description: "Bounces boxes off viewport edges", Category: "boxes"})
	r.Register(SystemInfo{ID: PassConfine, Name: "Confine", Description: "Clamps boxes into the viewport", Category: "boxes"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered systems.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all pass IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
